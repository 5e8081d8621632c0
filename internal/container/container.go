/*
Package container provides the dependency injection container for the
reservation engine's use cases.

This is the central wiring point following Clean Architecture principles:
- Infrastructure services (auth, config) are created in app.go
- Domain services (stock ledger, reservation state machine) are created
  by the reservation service package
- Use cases combine domain services with repositories

For detailed workflow, see:
- .claude/guides/common-tasks.md - Step-by-step feature guide
- .claude/adr/003-domain-services-vs-infrastructure.md - Service creation patterns
*/
package container

import (
	"context"
	"time"

	idempotencydomain "library-service/internal/domain/idempotency"
	outboxdomain "library-service/internal/domain/outbox"
	productdomain "library-service/internal/domain/product"
	stockdomain "library-service/internal/domain/stock"
	infraauth "library-service/internal/infrastructure/auth"
	"library-service/internal/pkg/repository/postgres"
	reservationdomain "library-service/internal/reservations/domain"
	reservationservice "library-service/internal/reservations/service"
)

// ================================================================================
// Generic Use Case Interfaces
// ================================================================================

// UseCase represents a single business use case
type UseCase[TRequest, TResponse any] interface {
	Execute(ctx context.Context, req TRequest) (TResponse, error)
}

// UseCaseWithoutResponse represents a use case that doesn't return data
type UseCaseWithoutResponse[TRequest any] interface {
	Execute(ctx context.Context, req TRequest) error
}

// QueryUseCase represents a read-only use case
type QueryUseCase[TRequest, TResponse any] interface {
	Execute(ctx context.Context, req TRequest) (TResponse, error)
}

// CommandUseCase represents a write operation use case
type CommandUseCase[TRequest, TResponse any] interface {
	Execute(ctx context.Context, req TRequest) (TResponse, error)
}

// ================================================================================
// Container and Dependencies
// ================================================================================

// Container holds all application use cases.
type Container struct {
	Reservation ReservationUseCases
}

// Repositories holds all repository interfaces
type Repositories struct {
	Reservation reservationdomain.Repository
	Stock       stockdomain.Repository
	Product     productdomain.Repository
	Outbox      outboxdomain.Repository
	Idempotency idempotencydomain.Repository
}

// ReservationConfig carries the reservation engine's runtime tunables into
// the container, since they come from application configuration rather
// than from a repository.
type ReservationConfig struct {
	TxManager        postgres.TxManager
	TTL              time.Duration
	MaxActivePerUser int
	IdempotencyTTL   time.Duration
}

// AuthServices holds all authentication services
type AuthServices struct {
	JWTService      *infraauth.JWTService
	PasswordService *infraauth.PasswordService
}

// Validator defines the validation interface used by use cases
type Validator interface {
	Validate(i interface{}) error
}

// ================================================================================
// Use Case Groups by Domain
// ================================================================================

// ReservationUseCases contains all reservation-related use cases
type ReservationUseCases struct {
	CreateReservation  *reservationservice.CreateReservationUseCase
	ConfirmReservation *reservationservice.ConfirmReservationUseCase
	CancelReservation  *reservationservice.CancelReservationUseCase
	GetReservation     *reservationservice.GetReservationUseCase
	ListReservations   *reservationservice.ListReservationsUseCase
}

// ================================================================================
// Main Container Constructor
// ================================================================================

// NewContainer creates a new use case container.
func NewContainer(
	repos *Repositories,
	authSvcs *AuthServices,
	validator Validator,
	reservationCfg ReservationConfig,
) *Container {
	reservationUseCases := newReservationUseCases(
		reservationCfg.TxManager,
		repos.Reservation,
		repos.Product,
		repos.Stock,
		repos.Outbox,
		repos.Idempotency,
		reservationCfg.TTL,
		reservationCfg.MaxActivePerUser,
		reservationCfg.IdempotencyTTL,
	)

	return &Container{
		Reservation: reservationUseCases,
	}
}

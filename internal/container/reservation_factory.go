package container

import (
	"time"

	idempotencydomain "library-service/internal/domain/idempotency"
	outboxdomain "library-service/internal/domain/outbox"
	productdomain "library-service/internal/domain/product"
	stockdomain "library-service/internal/domain/stock"
	"library-service/internal/pkg/repository/postgres"
	reservationdomain "library-service/internal/reservations/domain"
	reservationservice "library-service/internal/reservations/service"
)

// ================================================================================
// Factory Functions - Reservation Domain
// ================================================================================

// newReservationUseCases creates all reservation-related use cases
func newReservationUseCases(
	txManager postgres.TxManager,
	reservationRepo reservationdomain.Repository,
	productRepo productdomain.Repository,
	stockRepo stockdomain.Repository,
	outboxRepo outboxdomain.Repository,
	idempotencyRepo idempotencydomain.Repository,
	ttl time.Duration,
	maxActivePerUser int,
	idempotencyTTL time.Duration,
) ReservationUseCases {
	reservationService := reservationdomain.NewService()

	return ReservationUseCases{
		CreateReservation: reservationservice.NewCreateReservationUseCase(
			txManager, reservationRepo, productRepo, stockRepo, outboxRepo, idempotencyRepo,
			reservationService, ttl, maxActivePerUser, idempotencyTTL,
		),
		ConfirmReservation: reservationservice.NewConfirmReservationUseCase(
			txManager, reservationRepo, stockRepo, outboxRepo, reservationService,
		),
		CancelReservation: reservationservice.NewCancelReservationUseCase(
			txManager, reservationRepo, stockRepo, outboxRepo, reservationService,
		),
		GetReservation:   reservationservice.NewGetReservationUseCase(reservationRepo),
		ListReservations: reservationservice.NewListReservationsUseCase(reservationRepo),
	}
}

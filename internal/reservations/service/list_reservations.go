package service

import (
	"context"

	"go.uber.org/zap"

	pkglogutil "library-service/pkg/logutil"

	reservationdomain "library-service/internal/reservations/domain"
)

// ListReservationsRequest is the input for listing a user's reservations.
type ListReservationsRequest struct {
	UserID string
	Status reservationdomain.Status // empty means all statuses
}

// ListReservationsResponse is the output of listing a user's reservations.
type ListReservationsResponse struct {
	Reservations []reservationdomain.Response
}

// ListReservationsUseCase returns a user's reservations, optionally
// filtered by status.
type ListReservationsUseCase struct {
	reservationRepo reservationdomain.Repository
}

// NewListReservationsUseCase creates a new instance of ListReservationsUseCase.
func NewListReservationsUseCase(reservationRepo reservationdomain.Repository) *ListReservationsUseCase {
	return &ListReservationsUseCase{
		reservationRepo: reservationRepo,
	}
}

// Execute lists a user's reservations.
func (uc *ListReservationsUseCase) Execute(ctx context.Context, req ListReservationsRequest) (ListReservationsResponse, error) {
	logger := pkglogutil.UseCaseLogger(ctx, "reservation", "list")

	reservations, err := uc.reservationRepo.ListByUser(ctx, req.UserID, req.Status)
	if err != nil {
		logger.Warn("failed to list reservations", zap.Error(err))
		return ListReservationsResponse{}, err
	}

	return ListReservationsResponse{Reservations: reservationdomain.ParseFromReservations(reservations)}, nil
}

package service

import (
	"context"

	"go.uber.org/zap"

	pkglogutil "library-service/pkg/logutil"

	reservationdomain "library-service/internal/reservations/domain"
)

// GetReservationRequest is the input for getting a reservation.
type GetReservationRequest struct {
	ReservationID string
}

// GetReservationResponse is the output of getting a reservation.
type GetReservationResponse struct {
	reservationdomain.Response
}

// GetReservationUseCase retrieves a reservation by ID.
type GetReservationUseCase struct {
	reservationRepo reservationdomain.Repository
}

// NewGetReservationUseCase creates a new instance of GetReservationUseCase.
func NewGetReservationUseCase(reservationRepo reservationdomain.Repository) *GetReservationUseCase {
	return &GetReservationUseCase{
		reservationRepo: reservationRepo,
	}
}

// Execute retrieves a reservation by ID.
func (uc *GetReservationUseCase) Execute(ctx context.Context, req GetReservationRequest) (GetReservationResponse, error) {
	logger := pkglogutil.UseCaseLogger(ctx, "reservation", "get")

	reservation, err := uc.reservationRepo.Find(ctx, req.ReservationID)
	if err != nil {
		logger.Warn("failed to get reservation", zap.Error(err))
		return GetReservationResponse{}, err
	}

	return GetReservationResponse{Response: reservationdomain.ParseFromReservation(reservation)}, nil
}

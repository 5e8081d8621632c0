package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pkglogutil "library-service/pkg/logutil"

	"library-service/internal/domain/outbox"
	"library-service/internal/domain/stock"
	pkgerrors "library-service/internal/pkg/errors"
	"library-service/internal/pkg/repository/postgres"
	reservationdomain "library-service/internal/reservations/domain"
)

// CancelReservationRequest is the input for cancelling a reservation.
type CancelReservationRequest struct {
	ReservationID string
	UserID        string // To verify ownership
}

// CancelReservationResponse is the output of cancelling a reservation.
type CancelReservationResponse struct {
	reservationdomain.Response
}

// CancelReservationUseCase cancels a pending reservation, releasing its
// held stock back to availability.
type CancelReservationUseCase struct {
	txManager       postgres.TxManager
	reservationRepo reservationdomain.Repository
	stockRepo       stock.Repository
	outboxRepo      outbox.Repository
	reservationSvc  *reservationdomain.Service
}

// NewCancelReservationUseCase creates a new instance of CancelReservationUseCase.
func NewCancelReservationUseCase(
	txManager postgres.TxManager,
	reservationRepo reservationdomain.Repository,
	stockRepo stock.Repository,
	outboxRepo outbox.Repository,
	reservationSvc *reservationdomain.Service,
) *CancelReservationUseCase {
	return &CancelReservationUseCase{
		txManager:       txManager,
		reservationRepo: reservationRepo,
		stockRepo:       stockRepo,
		outboxRepo:      outboxRepo,
		reservationSvc:  reservationSvc,
	}
}

// Execute cancels a reservation.
func (uc *CancelReservationUseCase) Execute(ctx context.Context, req CancelReservationRequest) (CancelReservationResponse, error) {
	logger := pkglogutil.UseCaseLogger(ctx, "reservation", "cancel")

	var response CancelReservationResponse

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		reservation, err := uc.reservationRepo.Find(ctx, req.ReservationID)
		if err != nil {
			return err
		}

		if reservation.UserID != req.UserID {
			return pkgerrors.NotOwner(reservation.ID, req.UserID)
		}
		if err := uc.reservationSvc.CanBeCancelled(reservation); err != nil {
			return err
		}

		if err := uc.stockRepo.Release(ctx, reservation.ProductID, reservation.Quantity); err != nil {
			return err
		}

		now := time.Now()
		fields := reservationdomain.TransitionFields{CancelledAt: &now}
		applied, err := uc.reservationRepo.Transition(ctx, reservation.ID, reservationdomain.StatusPending, reservationdomain.StatusCancelled, fields)
		if err != nil {
			return err
		}
		if !applied {
			return pkgerrors.NotCancellable(reservation.ID, string(reservation.Status))
		}
		reservation.Status = reservationdomain.StatusCancelled
		reservation.CancelledAt = &now

		entry, err := outbox.NewEntry(uuid.New().String(), outbox.EventReservationCancelled, reservation, now)
		if err != nil {
			return err
		}
		if err := uc.outboxRepo.Insert(ctx, entry); err != nil {
			return err
		}

		response = CancelReservationResponse{Response: reservationdomain.ParseFromReservation(reservation)}
		return nil
	})
	if err != nil {
		logger.Warn("reservation cancel failed", zap.Error(err))
		return CancelReservationResponse{}, err
	}

	logger.Info("reservation cancelled", zap.String("reservation_id", req.ReservationID))
	return response, nil
}

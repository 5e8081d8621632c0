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

// ConfirmReservationRequest is the input for confirming a reservation.
type ConfirmReservationRequest struct {
	ReservationID string
	UserID        string
}

// ConfirmReservationResponse is the output of confirming a reservation.
type ConfirmReservationResponse struct {
	reservationdomain.Response
}

// ConfirmReservationUseCase converts a pending hold into a committed sale.
// If the hold has already expired, it instead transitions the reservation
// to EXPIRED, releases the held stock, emits reservation.expired, and
// returns ReservationExpired rather than succeeding silently.
type ConfirmReservationUseCase struct {
	txManager       postgres.TxManager
	reservationRepo reservationdomain.Repository
	stockRepo       stock.Repository
	outboxRepo      outbox.Repository
	reservationSvc  *reservationdomain.Service
}

// NewConfirmReservationUseCase creates a new instance of ConfirmReservationUseCase.
func NewConfirmReservationUseCase(
	txManager postgres.TxManager,
	reservationRepo reservationdomain.Repository,
	stockRepo stock.Repository,
	outboxRepo outbox.Repository,
	reservationSvc *reservationdomain.Service,
) *ConfirmReservationUseCase {
	return &ConfirmReservationUseCase{
		txManager:       txManager,
		reservationRepo: reservationRepo,
		stockRepo:       stockRepo,
		outboxRepo:      outboxRepo,
		reservationSvc:  reservationSvc,
	}
}

// Execute confirms a reservation.
func (uc *ConfirmReservationUseCase) Execute(ctx context.Context, req ConfirmReservationRequest) (ConfirmReservationResponse, error) {
	logger := pkglogutil.UseCaseLogger(ctx, "reservation", "confirm")

	var response ConfirmReservationResponse
	var expiredErr error

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		reservation, err := uc.reservationRepo.Find(ctx, req.ReservationID)
		if err != nil {
			return err
		}

		if err := uc.reservationSvc.CanBeConfirmed(reservation, req.UserID); err != nil {
			return err
		}

		now := time.Now()
		if reservation.IsExpired(now) {
			if err := uc.expireInline(ctx, &reservation, now); err != nil {
				return err
			}
			expiredErr = pkgerrors.ReservationExpired(reservation.ID)
			return nil
		}

		if err := uc.stockRepo.Commit(ctx, reservation.ProductID, reservation.Quantity); err != nil {
			return err
		}

		fields := reservationdomain.TransitionFields{ConfirmedAt: &now}
		applied, err := uc.reservationRepo.Transition(ctx, reservation.ID, reservationdomain.StatusPending, reservationdomain.StatusConfirmed, fields)
		if err != nil {
			return err
		}
		if !applied {
			return pkgerrors.NotPending(reservation.ID, string(reservation.Status))
		}
		reservation.Status = reservationdomain.StatusConfirmed
		reservation.ConfirmedAt = &now

		entry, err := outbox.NewEntry(uuid.New().String(), outbox.EventReservationConfirmed, reservation, now)
		if err != nil {
			return err
		}
		if err := uc.outboxRepo.Insert(ctx, entry); err != nil {
			return err
		}

		response = ConfirmReservationResponse{Response: reservationdomain.ParseFromReservation(reservation)}
		return nil
	})
	if err != nil {
		logger.Warn("reservation confirm failed", zap.Error(err))
		return ConfirmReservationResponse{}, err
	}
	if expiredErr != nil {
		logger.Info("reservation expired on confirm", zap.String("reservation_id", req.ReservationID))
		return ConfirmReservationResponse{}, expiredErr
	}

	logger.Info("reservation confirmed", zap.String("reservation_id", req.ReservationID))
	return response, nil
}

// expireInline runs the same release-and-transition sequence the reaper
// uses, but inline with the confirm attempt that discovered the expiry.
func (uc *ConfirmReservationUseCase) expireInline(ctx context.Context, reservation *reservationdomain.Reservation, now time.Time) error {
	_, err := Expire(ctx, ExpireDeps{
		StockRepo:       uc.stockRepo,
		ReservationRepo: uc.reservationRepo,
		OutboxRepo:      uc.outboxRepo,
	}, reservation, now)
	return err
}

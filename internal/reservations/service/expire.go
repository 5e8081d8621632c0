package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-service/internal/domain/outbox"
	"library-service/internal/domain/stock"
	reservationdomain "library-service/internal/reservations/domain"
)

// ExpireDeps bundles the repositories a PENDING-to-EXPIRED transition
// needs: the stock ledger to release the hold back to available, the
// reservation store to apply the gated transition, and the outbox to
// record the resulting event. Both ConfirmReservationUseCase (which
// discovers expiry inline while confirming) and the reaper (which
// discovers it by sweeping) drive the same sequence through this type.
type ExpireDeps struct {
	StockRepo       stock.Repository
	ReservationRepo reservationdomain.Repository
	OutboxRepo      outbox.Repository
}

// Expire releases reservation's held stock, transitions it from PENDING to
// EXPIRED, and inserts the resulting reservation.expired outbox entry. It
// returns (false, nil) without side effects if the reservation was no
// longer PENDING by the time the transition ran — a concurrent
// confirm/cancel already resolved it, which is not an error.
func Expire(ctx context.Context, deps ExpireDeps, reservation *reservationdomain.Reservation, now time.Time) (bool, error) {
	applied, err := deps.ReservationRepo.Transition(ctx, reservation.ID, reservationdomain.StatusPending, reservationdomain.StatusExpired, reservationdomain.TransitionFields{})
	if err != nil {
		return false, err
	}
	if !applied {
		return false, nil
	}
	reservation.Status = reservationdomain.StatusExpired

	if err := deps.StockRepo.Release(ctx, reservation.ProductID, reservation.Quantity); err != nil {
		return false, err
	}

	entry, err := outbox.NewEntry(uuid.New().String(), outbox.EventReservationExpired, *reservation, now)
	if err != nil {
		return false, err
	}
	return true, deps.OutboxRepo.Insert(ctx, entry)
}

package domain

import (
	"time"

	"library-service/internal/pkg/errors"
)

// Service encapsulates reservation business rules that don't naturally belong
// to a single entity: eligibility checks, status transitions, and expiry
// accounting. It is stateless; anything it needs is passed in by the caller.
type Service struct{}

// NewService creates a new reservation domain service.
func NewService() *Service {
	return &Service{}
}

// Validate checks a reservation's invariants independent of its current
// persisted state.
func (s *Service) Validate(reservation Reservation) error {
	if reservation.UserID == "" {
		return errors.ErrValidation.WithDetails("field", "user_id").WithDetails("reason", "user_id is required")
	}

	if reservation.ProductID == 0 {
		return errors.ErrValidation.WithDetails("field", "product_id").WithDetails("reason", "product_id is required")
	}

	if reservation.Quantity < 1 {
		return errors.ErrValidation.WithDetails("field", "quantity").WithDetails("reason", "quantity must be at least 1")
	}

	if reservation.ExpiresAt.Before(reservation.CreatedAt) {
		return errors.ErrValidation.WithDetails("field", "expires_at").WithDetails("reason", "expiration date must be after creation date")
	}

	return nil
}

// CanUserReserve checks the user-reservation-limit precondition: a user may
// not hold more than maxActive pending reservations at once.
func (s *Service) CanUserReserve(userID string, activeCount, maxActive int) error {
	if activeCount >= maxActive {
		return errors.UserReservationLimit(userID, maxActive)
	}

	return nil
}

// CanBeCancelled checks the cancel precondition: only pending reservations
// may be cancelled.
func (s *Service) CanBeCancelled(reservation Reservation) error {
	if !reservation.CanBeCancelled() {
		return errors.NotCancellable(reservation.ID, string(reservation.Status))
	}

	return nil
}

// CanBeConfirmed checks the confirm preconditions: the caller must own the
// reservation and it must still be pending. Expiry is handled separately by
// the orchestrator, since an expired-but-still-PENDING row confirms to
// EXPIRED rather than failing outright.
func (s *Service) CanBeConfirmed(reservation Reservation, userID string) error {
	if reservation.UserID != userID {
		return errors.NotOwner(reservation.ID, userID)
	}

	if !reservation.CanBeConfirmed() {
		return errors.NotPending(reservation.ID, string(reservation.Status))
	}

	return nil
}

// MarkAsConfirmed transitions a reservation to confirmed status.
func (s *Service) MarkAsConfirmed(reservation *Reservation, now time.Time) error {
	if reservation.Status != StatusPending {
		return errors.NotPending(reservation.ID, string(reservation.Status))
	}

	reservation.Status = StatusConfirmed
	reservation.ConfirmedAt = &now

	return nil
}

// MarkAsCancelled transitions a reservation to cancelled status.
func (s *Service) MarkAsCancelled(reservation *Reservation, now time.Time) error {
	if err := s.CanBeCancelled(*reservation); err != nil {
		return err
	}

	reservation.Status = StatusCancelled
	reservation.CancelledAt = &now

	return nil
}

// MarkAsExpired transitions a reservation to expired status. Callers
// (confirm orchestration, the reaper) are responsible for checking IsExpired
// before calling this; it only enforces the status precondition.
func (s *Service) MarkAsExpired(reservation *Reservation) error {
	if reservation.Status != StatusPending {
		return errors.NotPending(reservation.ID, string(reservation.Status))
	}

	reservation.Status = StatusExpired

	return nil
}

// NextExpiring returns the pending reservation with the nearest expiry, or
// nil if none are pending. Used by diagnostics and the reaper's dry-run mode.
func (s *Service) NextExpiring(reservations []Reservation) *Reservation {
	var next *Reservation

	for i := range reservations {
		if !reservations[i].IsPending() {
			continue
		}

		if next == nil || reservations[i].ExpiresAt.Before(next.ExpiresAt) {
			next = &reservations[i]
		}
	}

	return next
}

// ExpiresAt computes a reservation's expiry from its creation time and TTL.
func (s *Service) ExpiresAt(createdAt time.Time, ttl time.Duration) time.Time {
	return createdAt.Add(ttl)
}

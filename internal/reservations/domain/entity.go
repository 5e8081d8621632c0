package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the closed set of states a reservation can occupy.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

// Reservation is a hold against a product's available stock. It owns its own
// row plus the outbox entries emitted on its transitions; the stock row it
// references belongs exclusively to the ledger.
type Reservation struct {
	ID           string
	UserID       string
	ProductID    int64
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	Status       Status
	CustomerInfo map[string]string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	ConfirmedAt  *time.Time
	CancelledAt  *time.Time
	ReminderSentAt *time.Time
}

// CreateParams are the caller-supplied fields needed to create a reservation.
// TotalPrice and ExpiresAt are derived, never accepted from the caller.
type CreateParams struct {
	UserID       string
	ProductID    int64
	Quantity     int
	UnitPrice    decimal.Decimal
	CustomerInfo map[string]string
}

// New builds a pending reservation, deriving total price and expiry from ttl.
func New(id string, params CreateParams, now time.Time, ttl time.Duration) Reservation {
	return Reservation{
		ID:           id,
		UserID:       params.UserID,
		ProductID:    params.ProductID,
		Quantity:     params.Quantity,
		UnitPrice:    params.UnitPrice,
		TotalPrice:   params.UnitPrice.Mul(decimal.NewFromInt(int64(params.Quantity))),
		Status:       StatusPending,
		CustomerInfo: params.CustomerInfo,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

// IsPending reports whether the reservation is still awaiting confirmation.
func (r Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsActive reports whether the reservation still counts against a user's
// active-reservation limit (only pending holds count).
func (r Reservation) IsActive() bool {
	return r.Status == StatusPending
}

// IsExpired reports whether the reservation's TTL has elapsed, independent of
// its persisted status.
func (r Reservation) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// CanBeCancelled reports whether the reservation may transition to cancelled.
// Only pending reservations are cancellable; confirmed holds have already
// become a commitment and expired/cancelled holds are terminal.
func (r Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending
}

// CanBeConfirmed reports whether the reservation may transition to confirmed.
func (r Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

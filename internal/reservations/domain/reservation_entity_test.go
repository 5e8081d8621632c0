package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	now := time.Now()
	params := CreateParams{
		UserID:    "user-1",
		ProductID: 42,
		Quantity:  3,
		UnitPrice: decimal.NewFromFloat(9.99),
	}

	r := New("res-1", params, now, 15*time.Minute)

	assert.Equal(t, "res-1", r.ID)
	assert.Equal(t, StatusPending, r.Status)
	assert.True(t, r.TotalPrice.Equal(decimal.NewFromFloat(29.97)))
	assert.Equal(t, now.Add(15*time.Minute), r.ExpiresAt)
	assert.Nil(t, r.ConfirmedAt)
	assert.Nil(t, r.CancelledAt)
}

func TestReservation_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pending is active", StatusPending, true},
		{"confirmed is not active", StatusConfirmed, false},
		{"cancelled is not active", StatusCancelled, false},
		{"expired is not active", StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{Status: tt.status}
			assert.Equal(t, tt.want, r.IsActive())
		})
	}
}

func TestReservation_IsPending(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pending returns true", StatusPending, true},
		{"confirmed returns false", StatusConfirmed, false},
		{"cancelled returns false", StatusCancelled, false},
		{"expired returns false", StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{Status: tt.status}
			assert.Equal(t, tt.want, r.IsPending())
		})
	}
}

func TestReservation_IsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-1 * time.Hour)
	future := now.Add(1 * time.Hour)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"past expiration", past, true},
		{"before expiration", future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, r.IsExpired(now))
		})
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pending can be cancelled", StatusPending, true},
		{"confirmed cannot be cancelled", StatusConfirmed, false},
		{"cancelled cannot be cancelled again", StatusCancelled, false},
		{"expired cannot be cancelled", StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{Status: tt.status}
			assert.Equal(t, tt.want, r.CanBeCancelled())
		})
	}
}

func TestReservation_CanBeConfirmed(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"pending can be confirmed", StatusPending, true},
		{"confirmed cannot be confirmed again", StatusConfirmed, false},
		{"cancelled cannot be confirmed", StatusCancelled, false},
		{"expired cannot be confirmed", StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{Status: tt.status}
			assert.Equal(t, tt.want, r.CanBeConfirmed())
		})
	}
}

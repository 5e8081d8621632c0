package outbox

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reservationdomain "library-service/internal/reservations/domain"
)

func sampleReservation() reservationdomain.Reservation {
	return reservationdomain.Reservation{
		ID:         "res-1",
		UserID:     "user-1",
		ProductID:  42,
		Quantity:   3,
		UnitPrice:  decimal.NewFromInt(10),
		TotalPrice: decimal.NewFromInt(30),
		Status:     reservationdomain.StatusPending,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(15 * time.Minute),
	}
}

func TestNewEntry(t *testing.T) {
	now := time.Now()

	t.Run("carries expires_at for created and reminder events", func(t *testing.T) {
		res := sampleReservation()

		for _, et := range []EventType{EventReservationCreated, EventReservationReminder} {
			entry, err := NewEntry("id-1", et, res, now)
			require.NoError(t, err)

			var p payload
			require.NoError(t, json.Unmarshal(entry.Payload, &p))
			require.NotNil(t, p.ExpiresAt)
			assert.WithinDuration(t, res.ExpiresAt, *p.ExpiresAt, time.Second)
		}
	})

	t.Run("omits expires_at for confirmed, cancelled and expired events", func(t *testing.T) {
		res := sampleReservation()

		for _, et := range []EventType{EventReservationConfirmed, EventReservationCancelled, EventReservationExpired} {
			entry, err := NewEntry("id-1", et, res, now)
			require.NoError(t, err)

			var p payload
			require.NoError(t, json.Unmarshal(entry.Payload, &p))
			assert.Nil(t, p.ExpiresAt)
		}
	})

	t.Run("builds the topic from the event's subject suffix", func(t *testing.T) {
		res := sampleReservation()

		entry, err := NewEntry("id-1", EventReservationConfirmed, res, now)

		require.NoError(t, err)
		assert.Equal(t, "events.reservation.confirmed", entry.Topic)
	})

	t.Run("uses the reservation's user id as the aggregate key", func(t *testing.T) {
		res := sampleReservation()

		entry, err := NewEntry("id-1", EventReservationCreated, res, now)

		require.NoError(t, err)
		assert.Equal(t, res.UserID, entry.AggregateKey)
	})

	t.Run("payload reflects the reservation's current fields", func(t *testing.T) {
		res := sampleReservation()

		entry, err := NewEntry("id-1", EventReservationCreated, res, now)
		require.NoError(t, err)

		var p payload
		require.NoError(t, json.Unmarshal(entry.Payload, &p))
		assert.Equal(t, res.ID, p.ReservationID)
		assert.Equal(t, res.UserID, p.UserID)
		assert.Equal(t, res.ProductID, p.ProductID)
		assert.Equal(t, res.Quantity, p.Quantity)
		assert.Equal(t, string(res.Status), p.Status)
	})
}

func TestEntry_Published(t *testing.T) {
	entry := Entry{}
	assert.False(t, entry.Published())

	now := time.Now()
	entry.PublishedAt = &now
	assert.True(t, entry.Published())
}

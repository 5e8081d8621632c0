package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	reservationdomain "library-service/internal/reservations/domain"
)

// reservationSubject is the NATS subject prefix every reservation event is
// published under; the event type supplies the final token.
const reservationSubject = "events.reservation"

// payload is the wire shape published for every reservation event. It
// mirrors the fields a downstream consumer (billing, fulfillment, search)
// needs to react without calling back into this service.
type payload struct {
	ReservationID string          `json:"reservation_id"`
	UserID        string          `json:"user_id"`
	ProductID     int64           `json:"product_id"`
	Quantity      int             `json:"quantity"`
	Status        string          `json:"status"`
	OccurredAt    time.Time       `json:"occurred_at"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
}

// NewEntry builds the outbox row for a reservation event. id is caller-
// supplied (ULID/UUID) so it can double as the NATS message ID for
// broker-side dedup. now is passed in rather than read internally so the
// entry shares a timestamp with the transaction that produced it.
func NewEntry(id string, eventType EventType, reservation reservationdomain.Reservation, now time.Time) (Entry, error) {
	p := payload{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		ProductID:     reservation.ProductID,
		Quantity:      reservation.Quantity,
		Status:        string(reservation.Status),
		OccurredAt:    now,
	}
	if eventType == EventReservationCreated || eventType == EventReservationReminder {
		expiresAt := reservation.ExpiresAt
		p.ExpiresAt = &expiresAt
	}

	data, err := json.Marshal(p)
	if err != nil {
		return Entry{}, fmt.Errorf("outbox: marshal event %s: %w", eventType, err)
	}

	return Entry{
		ID:           id,
		AggregateKey: reservation.UserID,
		Topic:        fmt.Sprintf("%s.%s", reservationSubject, eventNameSuffix(eventType)),
		EventType:    eventType,
		Payload:      data,
		CreatedAt:    now,
	}, nil
}

func eventNameSuffix(eventType EventType) string {
	switch eventType {
	case EventReservationCreated:
		return "created"
	case EventReservationConfirmed:
		return "confirmed"
	case EventReservationCancelled:
		return "cancelled"
	case EventReservationExpired:
		return "expired"
	case EventReservationReminder:
		return "reminder"
	default:
		return "unknown"
	}
}

package domain

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Request represents the request payload for creating a reservation.
type Request struct {
	UserID         string            `json:"user_id"`
	ProductID      int64             `json:"product_id"`
	Quantity       int               `json:"quantity"`
	CustomerInfo   map[string]string `json:"customer_info,omitempty"`
	IdempotencyKey string            `json:"-"`
}

// Bind validates the request payload.
func (r *Request) Bind(req *http.Request) error {
	if r.UserID == "" {
		return errors.New("user_id: cannot be blank")
	}

	if r.ProductID == 0 {
		return errors.New("product_id: cannot be blank")
	}

	if r.Quantity < 1 {
		return errors.New("quantity: must be at least 1")
	}

	return nil
}

// Response represents the response payload for the reservation service.
type Response struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	ProductID    int64             `json:"product_id"`
	Quantity     int               `json:"quantity"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	TotalPrice   decimal.Decimal   `json:"total_price"`
	Status       Status            `json:"status"`
	CustomerInfo map[string]string `json:"customer_info,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	ExpiresAt    time.Time         `json:"expires_at"`
	ConfirmedAt  *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time        `json:"cancelled_at,omitempty"`
}

// ParseFromReservation converts a reservation entity to a response payload.
func ParseFromReservation(data Reservation) Response {
	return Response{
		ID:           data.ID,
		UserID:       data.UserID,
		ProductID:    data.ProductID,
		Quantity:     data.Quantity,
		UnitPrice:    data.UnitPrice,
		TotalPrice:   data.TotalPrice,
		Status:       data.Status,
		CustomerInfo: data.CustomerInfo,
		CreatedAt:    data.CreatedAt,
		ExpiresAt:    data.ExpiresAt,
		ConfirmedAt:  data.ConfirmedAt,
		CancelledAt:  data.CancelledAt,
	}
}

// ParseFromReservations converts a list of reservations to response payloads.
func ParseFromReservations(data []Reservation) []Response {
	res := make([]Response, len(data))
	for i, reservation := range data {
		res[i] = ParseFromReservation(reservation)
	}
	return res
}

package http

import "github.com/shopspring/decimal"

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	ProductID    int64             `json:"product_id" validate:"required"`
	Quantity     int               `json:"quantity" validate:"required,min=1"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	CustomerInfo map[string]string `json:"customer_info,omitempty"`
}

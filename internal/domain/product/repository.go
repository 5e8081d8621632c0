package product

import "context"

// Repository is the read-only view onto the catalog that the reservation
// engine needs: just enough to price a hold and check availability.
type Repository interface {
	// Get retrieves a product by ID.
	Get(ctx context.Context, id int64) (Product, error)
}

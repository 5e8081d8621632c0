package stock

import "context"

// Repository is the stock ledger's persistence boundary. Reserve, Release,
// Commit, and SetOnHand each perform a read-compute-CAS cycle internally
// (read the current row, ask Service for the next state, write it back
// gated on the version read) and retry on version conflicts up to the
// ledger's configured retry budget.
type Repository interface {
	// Get retrieves a product's current stock row.
	Get(ctx context.Context, productID int64) (Row, error)

	// Reserve holds qty units against a product's available stock.
	Reserve(ctx context.Context, productID int64, qty int) error

	// Release returns qty previously-reserved units to available stock.
	Release(ctx context.Context, productID int64, qty int) error

	// Commit converts qty reserved units into a permanent on-hand deduction.
	Commit(ctx context.Context, productID int64, qty int) error

	// SetOnHand overwrites a product's on-hand quantity (restock/correction).
	SetOnHand(ctx context.Context, productID int64, onHand int) error
}

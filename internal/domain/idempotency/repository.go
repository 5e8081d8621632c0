package idempotency

import "context"

// Repository is the idempotency key store's persistence boundary. Insert
// relies on a unique constraint on Key to make concurrent first-use races
// resolve to exactly one winner.
type Repository interface {
	// Find retrieves a record by key. Callers treat ErrNotFound as "first
	// use of this key."
	Find(ctx context.Context, key string) (Record, error)

	// Insert stores a new record, failing with ErrAlreadyExists if the key
	// is already taken.
	Insert(ctx context.Context, record Record) error
}

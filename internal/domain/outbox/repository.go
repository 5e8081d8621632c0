package outbox

import (
	"context"
	"time"
)

// Repository is the outbox's persistence boundary. Insert is always called
// inside the same transaction as the aggregate write it accompanies; the
// remaining methods back the publisher's drain loop and run outside any
// caller transaction.
type Repository interface {
	// Insert writes an entry. Callers run this inside the transaction that
	// also persists the state change the entry describes.
	Insert(ctx context.Context, entry Entry) error

	// ClaimBatch returns up to limit unpublished entries, oldest first,
	// ready for delivery.
	ClaimBatch(ctx context.Context, limit int) ([]Entry, error)

	// MarkPublished records a successful delivery.
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error

	// IncrementAttempts records a failed delivery attempt so backoff and
	// eventual dead-lettering can account for it.
	IncrementAttempts(ctx context.Context, id string) error
}

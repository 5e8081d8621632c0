package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"library-service/internal/domain/outbox"
	"library-service/internal/pkg/errors"
)

// OutboxRepository is an in-memory transactional outbox.
type OutboxRepository struct {
	entries map[string]outbox.Entry
	order   []string
	sync.Mutex
}

// Compile-time check that OutboxRepository implements outbox.Repository
var _ outbox.Repository = (*OutboxRepository)(nil)

// NewOutboxRepository creates a new in-memory OutboxRepository.
func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{entries: make(map[string]outbox.Entry)}
}

// Insert writes an entry.
func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.entries[entry.ID]; ok {
		return errors.ErrAlreadyExists.WithDetails("outbox_id", entry.ID)
	}
	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)
	return nil
}

// ClaimBatch returns up to limit unpublished entries, oldest first,
// ordered by aggregate key so same-aggregate events stay in sequence.
func (r *OutboxRepository) ClaimBatch(ctx context.Context, limit int) ([]outbox.Entry, error) {
	r.Lock()
	defer r.Unlock()

	var pending []outbox.Entry
	for _, id := range r.order {
		entry := r.entries[id]
		if !entry.Published() {
			pending = append(pending, entry)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].AggregateKey != pending[j].AggregateKey {
			return pending[i].AggregateKey < pending[j].AggregateKey
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

// MarkPublished records a successful delivery.
func (r *OutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	r.Lock()
	defer r.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return errors.ErrNotFound.WithDetails("outbox_id", id)
	}
	entry.PublishedAt = &publishedAt
	r.entries[id] = entry
	return nil
}

// IncrementAttempts records a failed delivery attempt.
func (r *OutboxRepository) IncrementAttempts(ctx context.Context, id string) error {
	r.Lock()
	defer r.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return errors.ErrNotFound.WithDetails("outbox_id", id)
	}
	entry.Attempts++
	r.entries[id] = entry
	return nil
}

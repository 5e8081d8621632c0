package memory

import (
	"context"
	"sync"

	"library-service/internal/domain/idempotency"
	"library-service/internal/pkg/errors"
)

// IdempotencyRepository is an in-memory idempotency key store.
type IdempotencyRepository struct {
	db map[string]idempotency.Record
	sync.Mutex
}

// Compile-time check that IdempotencyRepository implements idempotency.Repository
var _ idempotency.Repository = (*IdempotencyRepository)(nil)

// NewIdempotencyRepository creates a new in-memory IdempotencyRepository.
func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{db: make(map[string]idempotency.Record)}
}

// Find retrieves a record by key.
func (r *IdempotencyRepository) Find(ctx context.Context, key string) (idempotency.Record, error) {
	r.Lock()
	defer r.Unlock()

	record, ok := r.db[key]
	if !ok {
		return idempotency.Record{}, errors.ErrNotFound.WithDetails("idempotency_key", key)
	}
	return record, nil
}

// Insert stores a new record, failing if the key is already taken.
func (r *IdempotencyRepository) Insert(ctx context.Context, record idempotency.Record) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.db[record.Key]; ok {
		return errors.ErrAlreadyExists.WithDetails("idempotency_key", record.Key)
	}
	r.db[record.Key] = record
	return nil
}

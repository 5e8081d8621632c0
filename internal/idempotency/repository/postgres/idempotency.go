package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"library-service/internal/domain/idempotency"
	repopostgres "library-service/internal/pkg/repository/postgres"
)

// IdempotencyRepository persists idempotency key records in PostgreSQL. A
// unique constraint on key backs Insert, so a concurrent double-submit of
// the same key resolves to exactly one inserted row.
type IdempotencyRepository struct {
	db *sqlx.DB
}

// NewIdempotencyRepository creates a new PostgreSQL idempotency repository.
func NewIdempotencyRepository(db *sqlx.DB) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// Compile-time check that IdempotencyRepository implements idempotency.Repository
var _ idempotency.Repository = (*IdempotencyRepository)(nil)

// Find retrieves a record by key.
func (r *IdempotencyRepository) Find(ctx context.Context, key string) (idempotency.Record, error) {
	query := `SELECT * FROM idempotency_keys WHERE key=$1`
	var record idempotency.Record
	err := sqlx.GetContext(ctx, repopostgres.Queryer(ctx, r.db), &record, query, key)
	if err != nil {
		return idempotency.Record{}, repopostgres.HandleSQLError(err)
	}
	return record, nil
}

// Insert stores a new record.
func (r *IdempotencyRepository) Insert(ctx context.Context, record idempotency.Record) error {
	query := `
		INSERT INTO idempotency_keys (key, fingerprint, reservation_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := repopostgres.Queryer(ctx, r.db).ExecContext(
		ctx, query, record.Key, record.Fingerprint, record.ReservationID, record.CreatedAt, record.ExpiresAt,
	)
	return repopostgres.HandleSQLError(err)
}

package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"library-service/internal/domain/outbox"
	repopostgres "library-service/internal/pkg/repository/postgres"
)

// OutboxRepository persists the transactional outbox in PostgreSQL.
type OutboxRepository struct {
	db *sqlx.DB
}

// NewOutboxRepository creates a new PostgreSQL outbox repository.
func NewOutboxRepository(db *sqlx.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

// Compile-time check that OutboxRepository implements outbox.Repository
var _ outbox.Repository = (*OutboxRepository)(nil)

type row struct {
	ID           string     `db:"id"`
	AggregateKey string     `db:"aggregate_key"`
	Topic        string     `db:"topic"`
	EventType    string     `db:"event_type"`
	Payload      []byte     `db:"payload"`
	CreatedAt    time.Time  `db:"created_at"`
	PublishedAt  *time.Time `db:"published_at"`
	Attempts     int        `db:"attempts"`
}

// Insert writes an entry. Callers run this inside the transaction that
// also persists the aggregate state change it describes.
func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	query := `
		INSERT INTO outbox_entries (
			id, aggregate_key, topic, event_type, payload, created_at, attempts
		) VALUES ($1, $2, $3, $4, $5, $6, 0)
	`
	_, err := repopostgres.Queryer(ctx, r.db).ExecContext(
		ctx, query,
		entry.ID, entry.AggregateKey, entry.Topic, string(entry.EventType), entry.Payload, entry.CreatedAt,
	)
	return repopostgres.HandleSQLError(err)
}

// ClaimBatch returns up to limit unpublished entries, oldest first. It
// orders by aggregate_key then created_at so the publisher can deliver
// each aggregate's events in the order they were produced.
func (r *OutboxRepository) ClaimBatch(ctx context.Context, limit int) ([]outbox.Entry, error) {
	query := `
		SELECT * FROM outbox_entries
		WHERE published_at IS NULL
		ORDER BY aggregate_key, created_at
		LIMIT $1
	`
	var rows []row
	err := sqlx.SelectContext(ctx, repopostgres.Queryer(ctx, r.db), &rows, query, limit)
	if err != nil {
		return nil, repopostgres.HandleSQLError(err)
	}

	entries := make([]outbox.Entry, 0, len(rows))
	for _, rr := range rows {
		entries = append(entries, outbox.Entry{
			ID:           rr.ID,
			AggregateKey: rr.AggregateKey,
			Topic:        rr.Topic,
			EventType:    outbox.EventType(rr.EventType),
			Payload:      rr.Payload,
			CreatedAt:    rr.CreatedAt,
			PublishedAt:  rr.PublishedAt,
			Attempts:     rr.Attempts,
		})
	}
	return entries, nil
}

// MarkPublished records a successful delivery.
func (r *OutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	query := `UPDATE outbox_entries SET published_at=$1 WHERE id=$2`
	_, err := repopostgres.Queryer(ctx, r.db).ExecContext(ctx, query, publishedAt, id)
	return repopostgres.HandleSQLError(err)
}

// IncrementAttempts records a failed delivery attempt.
func (r *OutboxRepository) IncrementAttempts(ctx context.Context, id string) error {
	query := `UPDATE outbox_entries SET attempts=attempts+1 WHERE id=$1`
	_, err := repopostgres.Queryer(ctx, r.db).ExecContext(ctx, query, id)
	return repopostgres.HandleSQLError(err)
}

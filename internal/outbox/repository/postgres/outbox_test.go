package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-service/internal/domain/outbox"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestOutboxRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewOutboxRepository(db)

	entry := outbox.Entry{
		ID:           "entry-1",
		AggregateKey: "res-1",
		Topic:        "events.reservation.created",
		EventType:    outbox.EventReservationCreated,
		Payload:      []byte(`{}`),
		CreatedAt:    time.Now(),
	}

	mock.ExpectExec(`INSERT INTO outbox_entries`).
		WithArgs(entry.ID, entry.AggregateKey, entry.Topic, string(entry.EventType), entry.Payload, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), entry)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ClaimBatch_OrdersByAggregateKeyThenCreatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewOutboxRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "aggregate_key", "topic", "event_type", "payload", "created_at", "published_at", "attempts"}).
		AddRow("e1", "res-1", "events.reservation.created", "reservation.created", []byte(`{}`), now, nil, 0).
		AddRow("e2", "res-1", "events.reservation.confirmed", "reservation.confirmed", []byte(`{}`), now.Add(time.Second), nil, 0).
		AddRow("e3", "res-2", "events.reservation.created", "reservation.created", []byte(`{}`), now, nil, 0)

	mock.ExpectQuery(`SELECT \* FROM outbox_entries`).
		WithArgs(10).
		WillReturnRows(rows)

	entries, err := repo.ClaimBatch(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Equal(t, "e3", entries[2].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkPublished(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewOutboxRepository(db)

	publishedAt := time.Now()
	mock.ExpectExec(`UPDATE outbox_entries SET published_at=\$1 WHERE id=\$2`).
		WithArgs(publishedAt, "entry-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkPublished(context.Background(), "entry-1", publishedAt)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_IncrementAttempts(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewOutboxRepository(db)

	mock.ExpectExec(`UPDATE outbox_entries SET attempts=attempts\+1 WHERE id=\$1`).
		WithArgs("entry-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementAttempts(context.Background(), "entry-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

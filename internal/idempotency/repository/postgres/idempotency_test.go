package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-service/internal/domain/idempotency"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestIdempotencyRepository_Find(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewIdempotencyRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"key", "fingerprint", "reservation_id", "created_at", "expires_at"}).
		AddRow("key-1", "fp-1", "res-1", now, now.Add(10*time.Minute))
	mock.ExpectQuery(`SELECT \* FROM idempotency_keys WHERE key=\$1`).
		WithArgs("key-1").
		WillReturnRows(rows)

	record, err := repo.Find(context.Background(), "key-1")

	require.NoError(t, err)
	assert.Equal(t, "res-1", record.ReservationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewIdempotencyRepository(db)

	record := idempotency.NewRecord("key-1", "fp-1", "res-1", time.Now(), 10*time.Minute)

	mock.ExpectExec(`INSERT INTO idempotency_keys`).
		WithArgs(record.Key, record.Fingerprint, record.ReservationID, record.CreatedAt, record.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), record)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepository_Insert_DuplicateKeyConflict(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewIdempotencyRepository(db)

	record := idempotency.NewRecord("key-1", "fp-1", "res-1", time.Now(), 10*time.Minute)

	mock.ExpectExec(`INSERT INTO idempotency_keys`).
		WithArgs(record.Key, record.Fingerprint, record.ReservationID, record.CreatedAt, record.ExpiresAt).
		WillReturnError(assert.AnError)

	err := repo.Insert(context.Background(), record)

	assert.Error(t, err)
}

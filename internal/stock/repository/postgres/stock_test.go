package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestStockRepository_Reserve(t *testing.T) {
	t.Run("applies on the first try when the version still matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()
		repo := NewStockRepository(db, 3)

		rows := sqlmock.NewRows([]string{"product_id", "on_hand", "reserved", "version", "updated_at"}).
			AddRow(int64(1), 10, 2, int64(5), time.Now())
		mock.ExpectQuery(`SELECT \* FROM stock_ledger WHERE product_id=\$1`).
			WithArgs(int64(1)).
			WillReturnRows(rows)
		mock.ExpectExec(`UPDATE stock_ledger`).
			WithArgs(10, 5, int64(1), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Reserve(context.Background(), 1, 3)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries after losing a version race", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()
		repo := NewStockRepository(db, 3)

		firstRead := sqlmock.NewRows([]string{"product_id", "on_hand", "reserved", "version", "updated_at"}).
			AddRow(int64(1), 10, 2, int64(5), time.Now())
		mock.ExpectQuery(`SELECT \* FROM stock_ledger WHERE product_id=\$1`).
			WithArgs(int64(1)).
			WillReturnRows(firstRead)
		mock.ExpectExec(`UPDATE stock_ledger`).
			WithArgs(10, 5, int64(1), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		secondRead := sqlmock.NewRows([]string{"product_id", "on_hand", "reserved", "version", "updated_at"}).
			AddRow(int64(1), 10, 3, int64(6), time.Now())
		mock.ExpectQuery(`SELECT \* FROM stock_ledger WHERE product_id=\$1`).
			WithArgs(int64(1)).
			WillReturnRows(secondRead)
		mock.ExpectExec(`UPDATE stock_ledger`).
			WithArgs(10, 6, int64(1), int64(6)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Reserve(context.Background(), 1, 3)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not retry a validation failure, it is permanent", func(t *testing.T) {
		db, mock := newMockDB(t)
		defer db.Close()
		repo := NewStockRepository(db, 3)

		rows := sqlmock.NewRows([]string{"product_id", "on_hand", "reserved", "version", "updated_at"}).
			AddRow(int64(1), 10, 9, int64(5), time.Now())
		mock.ExpectQuery(`SELECT \* FROM stock_ledger WHERE product_id=\$1`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		err := repo.Reserve(context.Background(), 1, 5)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStockRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()
	repo := NewStockRepository(db, 3)

	mock.ExpectQuery(`SELECT \* FROM stock_ledger WHERE product_id=\$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)

	assert.Error(t, err)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// TxManager runs a function inside a single database transaction, committing
// on success and rolling back on error or panic. Repositories that embed
// BaseRepository automatically pick up the transaction from ctx via Queryer,
// so a use case composes multiple repository calls into one atomic unit by
// wrapping them in WithTx.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SqlxTxManager is the sqlx-backed TxManager implementation.
type SqlxTxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a TxManager bound to db.
func NewTxManager(db *sqlx.DB) *SqlxTxManager {
	return &SqlxTxManager{db: db}
}

// WithTx begins a transaction, runs fn with it attached to ctx, and commits
// or rolls back depending on whether fn returns an error or panics.
func (m *SqlxTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("tx: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(context.WithValue(ctx, txKey{}, tx))
	return err
}

// Queryer returns the *sqlx.Tx stashed in ctx by WithTx, falling back to db
// when the call is running outside a transaction.
func Queryer(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// TxFromContext returns the *sqlx.Tx in ctx, if WithTx put one there.
func TxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok
}

// NoopTxManager runs fn directly without a real transaction. It backs the
// in-memory store, whose repositories have no shared connection to begin
// one against and enforce atomicity through their own mutexes instead.
type NoopTxManager struct{}

// WithTx runs fn with ctx unchanged.
func (NoopTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

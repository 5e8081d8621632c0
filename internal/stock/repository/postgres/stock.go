package postgres

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"

	"library-service/internal/domain/stock"
	repopostgres "library-service/internal/pkg/repository/postgres"
)

// StockRepository persists the stock ledger in PostgreSQL. Every mutation
// is a read-compute-CAS cycle: read the row, ask stock.Service to compute
// the next state, then write it back gated on the version just read. A
// version mismatch means a concurrent writer won the race; the repository
// retries with fresh reads up to maxRetries rather than surfacing the
// conflict to the caller, since the retry is cheap and the caller has no
// better recourse than "try again."
type StockRepository struct {
	db         *sqlx.DB
	service    *stock.Service
	maxRetries uint64
}

// NewStockRepository creates a new PostgreSQL stock ledger repository.
// maxRetries bounds the CAS retry loop (LEDGER_RETRY_MAX in configuration).
func NewStockRepository(db *sqlx.DB, maxRetries uint64) *StockRepository {
	return &StockRepository{
		db:         db,
		service:    stock.NewService(),
		maxRetries: maxRetries,
	}
}

// Compile-time check that StockRepository implements stock.Repository
var _ stock.Repository = (*StockRepository)(nil)

// Get retrieves a product's current stock row.
func (r *StockRepository) Get(ctx context.Context, productID int64) (stock.Row, error) {
	query := `SELECT * FROM stock_ledger WHERE product_id=$1`
	var row stock.Row
	err := sqlx.GetContext(ctx, repopostgres.Queryer(ctx, r.db), &row, query, productID)
	if err != nil {
		return stock.Row{}, repopostgres.HandleSQLError(err)
	}
	return row, nil
}

// Reserve holds qty units against a product's available stock.
func (r *StockRepository) Reserve(ctx context.Context, productID int64, qty int) error {
	return r.mutate(ctx, productID, func(row stock.Row) (stock.Row, error) {
		return r.service.Reserve(row, qty)
	})
}

// Release returns qty previously-reserved units to available stock.
func (r *StockRepository) Release(ctx context.Context, productID int64, qty int) error {
	return r.mutate(ctx, productID, func(row stock.Row) (stock.Row, error) {
		return r.service.Release(row, qty)
	})
}

// Commit converts qty reserved units into a permanent on-hand deduction.
func (r *StockRepository) Commit(ctx context.Context, productID int64, qty int) error {
	return r.mutate(ctx, productID, func(row stock.Row) (stock.Row, error) {
		return r.service.Commit(row, qty)
	})
}

// SetOnHand overwrites a product's on-hand quantity.
func (r *StockRepository) SetOnHand(ctx context.Context, productID int64, onHand int) error {
	return r.mutate(ctx, productID, func(row stock.Row) (stock.Row, error) {
		return r.service.SetOnHand(row, onHand)
	})
}

// mutate runs the read-compute-CAS cycle, retrying on lost version races.
func (r *StockRepository) mutate(ctx context.Context, productID int64, compute func(stock.Row) (stock.Row, error)) error {
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.maxRetries)

	return backoff.Retry(func() error {
		row, err := r.Get(ctx, productID)
		if err != nil {
			return backoff.Permanent(err)
		}

		next, err := compute(row)
		if err != nil {
			return backoff.Permanent(err)
		}

		applied, err := r.writeIfVersionMatches(ctx, next, row.Version)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !applied {
			return fmt.Errorf("stock repository: version conflict on product %d", productID)
		}
		return nil
	}, policy)
}

func (r *StockRepository) writeIfVersionMatches(ctx context.Context, next stock.Row, expectedVersion int64) (bool, error) {
	query := `
		UPDATE stock_ledger
		SET on_hand=$1, reserved=$2, version=version+1, updated_at=now()
		WHERE product_id=$3 AND version=$4
	`
	res, err := repopostgres.Queryer(ctx, r.db).ExecContext(ctx, query, next.OnHand, next.Reserved, next.ProductID, expectedVersion)
	if err != nil {
		return false, repopostgres.HandleSQLError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repopostgres.HandleSQLError(err)
	}
	return n == 1, nil
}

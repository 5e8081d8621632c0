package memory

import (
	"context"
	"sync"
	"time"

	"library-service/internal/domain/stock"
	"library-service/internal/pkg/errors"
)

// StockRepository is an in-memory stock ledger. The CAS dance the
// PostgreSQL repository performs over a version column collapses to a
// single mutex here: there is no concurrent writer to race against once
// the lock is held.
type StockRepository struct {
	db      map[int64]stock.Row
	service *stock.Service
	sync.Mutex
}

// Compile-time check that StockRepository implements stock.Repository
var _ stock.Repository = (*StockRepository)(nil)

// NewStockRepository creates a new in-memory StockRepository seeded with
// the given rows.
func NewStockRepository(seed ...stock.Row) *StockRepository {
	db := make(map[int64]stock.Row, len(seed))
	for _, row := range seed {
		db[row.ProductID] = row
	}
	return &StockRepository{db: db, service: stock.NewService()}
}

// Put upserts a row, for seeding tests and local fixtures.
func (r *StockRepository) Put(row stock.Row) {
	r.Lock()
	defer r.Unlock()
	r.db[row.ProductID] = row
}

// Get retrieves a product's current stock row.
func (r *StockRepository) Get(ctx context.Context, productID int64) (stock.Row, error) {
	r.Lock()
	defer r.Unlock()

	row, ok := r.db[productID]
	if !ok {
		return stock.Row{}, errors.ErrNotFound.WithDetails("product_id", productID)
	}
	return row, nil
}

// Reserve holds qty units against a product's available stock.
func (r *StockRepository) Reserve(ctx context.Context, productID int64, qty int) error {
	return r.mutate(productID, func(row stock.Row) (stock.Row, error) {
		return r.service.Reserve(row, qty)
	})
}

// Release returns qty previously-reserved units to available stock.
func (r *StockRepository) Release(ctx context.Context, productID int64, qty int) error {
	return r.mutate(productID, func(row stock.Row) (stock.Row, error) {
		return r.service.Release(row, qty)
	})
}

// Commit converts qty reserved units into a permanent on-hand deduction.
func (r *StockRepository) Commit(ctx context.Context, productID int64, qty int) error {
	return r.mutate(productID, func(row stock.Row) (stock.Row, error) {
		return r.service.Commit(row, qty)
	})
}

// SetOnHand overwrites a product's on-hand quantity.
func (r *StockRepository) SetOnHand(ctx context.Context, productID int64, onHand int) error {
	return r.mutate(productID, func(row stock.Row) (stock.Row, error) {
		return r.service.SetOnHand(row, onHand)
	})
}

func (r *StockRepository) mutate(productID int64, compute func(stock.Row) (stock.Row, error)) error {
	r.Lock()
	defer r.Unlock()

	row, ok := r.db[productID]
	if !ok {
		return errors.ErrNotFound.WithDetails("product_id", productID)
	}

	next, err := compute(row)
	if err != nil {
		return err
	}
	next.Version++
	next.UpdatedAt = time.Now()
	r.db[productID] = next
	return nil
}

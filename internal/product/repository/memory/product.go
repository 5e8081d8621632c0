package memory

import (
	"context"
	"sync"

	"library-service/internal/domain/product"
	"library-service/internal/pkg/errors"
)

// ProductRepository is an in-memory product catalog view, used for local
// development and tests.
type ProductRepository struct {
	db map[int64]product.Product
	sync.RWMutex
}

// Compile-time check that ProductRepository implements product.Repository
var _ product.Repository = (*ProductRepository)(nil)

// NewProductRepository creates a new in-memory ProductRepository seeded
// with the given products.
func NewProductRepository(seed ...product.Product) *ProductRepository {
	db := make(map[int64]product.Product, len(seed))
	for _, p := range seed {
		db[p.ID] = p
	}
	return &ProductRepository{db: db}
}

// Put upserts a product, for seeding tests and local fixtures.
func (r *ProductRepository) Put(p product.Product) {
	r.Lock()
	defer r.Unlock()
	r.db[p.ID] = p
}

// Get retrieves a product by ID.
func (r *ProductRepository) Get(ctx context.Context, id int64) (product.Product, error) {
	r.RLock()
	defer r.RUnlock()

	p, ok := r.db[id]
	if !ok {
		return product.Product{}, errors.ErrNotFound.WithDetails("product_id", id)
	}
	return p, nil
}

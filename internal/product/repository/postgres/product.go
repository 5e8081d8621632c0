package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"library-service/internal/domain/product"
	repopostgres "library-service/internal/pkg/repository/postgres"
)

// ProductRepository is the reservation engine's read-only view onto the
// catalog table PostgreSQL-backed.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Compile-time check that ProductRepository implements product.Repository
var _ product.Repository = (*ProductRepository)(nil)

// Get retrieves a product by ID.
func (r *ProductRepository) Get(ctx context.Context, id int64) (product.Product, error) {
	query := `SELECT * FROM products WHERE id=$1`
	var p product.Product
	err := sqlx.GetContext(ctx, repopostgres.Queryer(ctx, r.db), &p, query, id)
	if err != nil {
		return product.Product{}, repopostgres.HandleSQLError(err)
	}
	return p, nil
}

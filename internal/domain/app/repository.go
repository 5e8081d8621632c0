package app

import (
	idempotencydomain "library-service/internal/domain/idempotency"
	outboxdomain "library-service/internal/domain/outbox"
	productdomain "library-service/internal/domain/product"
	stockdomain "library-service/internal/domain/stock"
	idempotencymemory "library-service/internal/idempotency/repository/memory"
	idempotencypostgres "library-service/internal/idempotency/repository/postgres"
	store "library-service/internal/infrastructure/store"
	outboxmemory "library-service/internal/outbox/repository/memory"
	outboxpostgres "library-service/internal/outbox/repository/postgres"
	repopostgres "library-service/internal/pkg/repository/postgres"
	productmemory "library-service/internal/product/repository/memory"
	productpostgres "library-service/internal/product/repository/postgres"
	reservationdomain "library-service/internal/reservations/domain"
	reservationrepo "library-service/internal/reservations/repository"
	reservationmemory "library-service/internal/reservations/repository/memory"
	stockmemory "library-service/internal/stock/repository/memory"
	stockpostgres "library-service/internal/stock/repository/postgres"
)

// RepositoryConfig function type for repository setup
type RepositoryConfig func(*Repositories) error

// Repositories holds all repository implementations backing the
// reservation engine: the stock ledger, product catalog, reservation
// state machine, transactional outbox and idempotency store.
type Repositories struct {
	postgres *store.SQL

	Reservation reservationdomain.Repository
	Stock       stockdomain.Repository
	Product     productdomain.Repository
	Outbox      outboxdomain.Repository
	Idempotency idempotencydomain.Repository
	TxManager   repopostgres.TxManager
}

// NewRepositories creates a new repository container
func NewRepositories(configs ...RepositoryConfig) (*Repositories, error) {
	repos := &Repositories{}

	for _, cfg := range configs {
		if err := cfg(repos); err != nil {
			return nil, err
		}
	}

	return repos, nil
}

// Close closes all store connections
func (r *Repositories) Close() {
	if r.postgres != nil && r.postgres.Connection != nil {
		r.postgres.Connection.Close()
	}
}

// WithMemoryStore configures in-memory repositories
func WithMemoryStore() RepositoryConfig {
	return func(r *Repositories) error {
		r.Reservation = reservationmemory.NewReservationRepository()
		r.Stock = stockmemory.NewStockRepository()
		r.Product = productmemory.NewProductRepository()
		r.Outbox = outboxmemory.NewOutboxRepository()
		r.Idempotency = idempotencymemory.NewIdempotencyRepository()
		r.TxManager = repopostgres.NoopTxManager{}

		return nil
	}
}

// WithPostgresStore configures PostgreSQL repositories
func WithPostgresStore(dsn string, ledgerRetryMax int) RepositoryConfig {
	return func(r *Repositories) error {
		db, err := store.NewSQL(dsn)
		if err != nil {
			return err
		}
		r.postgres = db

		if err := store.RunMigrations(dsn); err != nil {
			return err
		}

		r.Reservation = reservationrepo.NewReservationRepository(db.Connection)
		r.Stock = stockpostgres.NewStockRepository(db.Connection, uint64(ledgerRetryMax))
		r.Product = productpostgres.NewProductRepository(db.Connection)
		r.Outbox = outboxpostgres.NewOutboxRepository(db.Connection)
		r.Idempotency = idempotencypostgres.NewIdempotencyRepository(db.Connection)
		r.TxManager = repopostgres.NewTxManager(db.Connection)

		return nil
	}
}

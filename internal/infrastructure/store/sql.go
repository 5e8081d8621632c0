package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// SQL wraps a pooled sqlx connection to a relational store.
type SQL struct {
	Connection *sqlx.DB
}

// NewSQL opens a pgx-backed sqlx connection pool against dsn and verifies it
// with a ping before returning.
func NewSQL(dsn string) (*SQL, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &SQL{Connection: db}, nil
}

// Close closes the underlying connection pool.
func (s *SQL) Close() error {
	if s == nil || s.Connection == nil {
		return nil
	}
	return s.Connection.Close()
}

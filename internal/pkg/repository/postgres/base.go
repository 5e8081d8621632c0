package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	pkgerrors "library-service/internal/pkg/errors"
)

// BaseRepository supplies the CRUD operations that are identical across
// entity-specific repositories, parameterized on the row type T. Embed it and
// implement only the queries that need entity-specific SQL; List, Get, and
// Delete are inherited as-is.
type BaseRepository[T any] struct {
	db        *sqlx.DB
	tableName string
}

// NewBaseRepository creates a BaseRepository for the given table.
func NewBaseRepository[T any](db *sqlx.DB, tableName string) BaseRepository[T] {
	return BaseRepository[T]{db: db, tableName: tableName}
}

// GetDB exposes the underlying connection for entity-specific queries.
func (r *BaseRepository[T]) GetDB() *sqlx.DB {
	return r.db
}

// TableName returns the table this repository operates on.
func (r *BaseRepository[T]) TableName() string {
	return r.tableName
}

// Get retrieves a row by id.
func (r *BaseRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var entity T
	query := fmt.Sprintf("SELECT * FROM %s WHERE id=$1", r.tableName)
	err := sqlx.GetContext(ctx, Queryer(ctx, r.db), &entity, query, id)
	return entity, HandleSQLError(err)
}

// List returns every row in the table, ordered by id.
func (r *BaseRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id", r.tableName)
	err := sqlx.SelectContext(ctx, Queryer(ctx, r.db), &entities, query)
	return entities, err
}

// Delete removes a row by id.
func (r *BaseRepository[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id=$1", r.tableName)
	res, err := Queryer(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return HandleSQLError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return HandleSQLError(err)
	}
	if n == 0 {
		return pkgerrors.ErrNotFound
	}

	return nil
}

// Postgres error codes this package maps to domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// HandleSQLError maps database/sql and pgx errors to domain errors so callers
// never need to inspect driver-specific error types themselves.
func HandleSQLError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return pkgerrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return pkgerrors.ErrAlreadyExists.WithDetails("constraint", pgErr.ConstraintName)
		case pgForeignKeyViolation, pgCheckViolation:
			return pkgerrors.ErrValidation.WithDetails("constraint", pgErr.ConstraintName)
		}
	}

	return pkgerrors.ErrDatabase.Wrap(fmt.Errorf("repository: %w", err))
}

package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/library_management_app/internal/apperrors"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dialect builds prepared statements with $n placeholders for pgx.
var dialect = goqu.Dialect("postgres")

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ querier = (*pgxpool.Pool)(nil)
	_ querier = (pgx.Tx)(nil)
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction at READ COMMITTED. A row locked
// with FOR UPDATE is re-read after the lock wait, so checks see the latest
// committed state.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// inTx runs fn in one transaction. The deferred rollback is a no-op after a
// successful commit and undoes everything otherwise, including when ctx is
// cancelled mid-way.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// Use a fresh context: ctx may already be cancelled.
		if rbErr := r.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil && err == nil {
			err = rbErr
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// selectSQL renders a goqu dataset as a prepared statement.
func selectSQL(ds *goqu.SelectDataset) (string, []any, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, apperrors.NewAppError(500, "failed to build query", err)
	}
	return query, args, nil
}

// collectOne returns the first row of a list query or a NotFound error for entity.
func collectOne[T any](items []T, entity string) (*T, error) {
	if len(items) == 0 {
		return nil, apperrors.NewNotFoundError(entity)
	}
	return &items[0], nil
}

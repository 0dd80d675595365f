package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kantocollect/salesops/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
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

// execEachInSavepoint runs one statement per key inside tx, each in its own
// savepoint. Failed rows are rolled back individually and returned keyed by id.
func execEachInSavepoint(ctx context.Context, tx pgx.Tx, ids []int64, stmt func(i int) (string, []any)) (map[int64]error, error) {
	failed := make(map[int64]error)
	for i, id := range ids {
		sp, err := tx.Begin(ctx)
		if err != nil {
			return failed, apperrors.NewAppError(500, "failed to open savepoint", err)
		}
		query, args := stmt(i)
		tag, err := sp.Exec(ctx, query, args...)
		if err == nil && tag.RowsAffected() == 0 {
			err = apperrors.ErrNotFound
		}
		if err != nil {
			failed[id] = err
			if rbErr := sp.Rollback(ctx); rbErr != nil {
				return failed, apperrors.NewAppError(500, "failed to roll back savepoint", rbErr)
			}
			continue
		}
		if err := sp.Commit(ctx); err != nil {
			return failed, apperrors.NewAppError(500, "failed to release savepoint", err)
		}
	}
	return failed, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"resort/infras/postgres"

	"github.com/jmoiron/sqlx"
)

// Transaction runs fn on the write pool and commits when it returns nil.
// Any error, including a failed commit, leaves nothing behind.
func Transaction(ctx context.Context, db *postgres.Connection, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

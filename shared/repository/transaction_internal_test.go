package repository

import (
	"context"
	"errors"
	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	ID    string `db:"id"`
	Label string `db:"label"`
}

func newLineRepo(t *testing.T) (Repository[line], *postgres.Connection) {
	t.Helper()

	db := sqlx.MustOpen("sqlite3", ":memory:")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	db.MustExec(`CREATE TABLE lines (id TEXT PRIMARY KEY, label TEXT NOT NULL)`)

	conn := &postgres.Connection{Read: db, Write: db}

	return NewRepository[line]("line", "lines", "id", conn, mocks.NewOtel()), conn
}

func countLines(t *testing.T, conn *postgres.Connection) int {
	t.Helper()

	var n int
	require.NoError(t, conn.Read.Get(&n, `SELECT COUNT(*) FROM lines`))

	return n
}

func TestTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits every insert", func(t *testing.T) {
		repo, conn := newLineRepo(t)

		err := Transaction(ctx, conn, func(tx *sqlx.Tx) error {
			if err := repo.InsertTx(ctx, tx, line{ID: "1", Label: "rope"}); err != nil {
				return err
			}

			return repo.InsertTx(ctx, tx, line{ID: "2", Label: "paint"})
		})

		require.NoError(t, err)
		assert.Equal(t, 2, countLines(t, conn))
	})

	t.Run("rolls back when a later insert fails", func(t *testing.T) {
		repo, conn := newLineRepo(t)

		err := Transaction(ctx, conn, func(tx *sqlx.Tx) error {
			if err := repo.InsertTx(ctx, tx, line{ID: "1", Label: "rope"}); err != nil {
				return err
			}

			return repo.InsertTx(ctx, tx, line{ID: "1", Label: "duplicate"})
		})

		require.Error(t, err)
		assert.Zero(t, countLines(t, conn))
	})

	t.Run("returns the callback error untouched", func(t *testing.T) {
		_, conn := newLineRepo(t)
		sentinel := errors.New("stop")

		err := Transaction(ctx, conn, func(*sqlx.Tx) error { return sentinel })

		assert.ErrorIs(t, err, sentinel)
	})
}

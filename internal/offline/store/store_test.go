package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort/internal/offline/store"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "frontdesk.db")

	st, err := store.Open(ctx, path)
	require.NoError(t, err)

	version, err := st.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	var mode string
	require.NoError(t, st.DB.GetContext(ctx, &mode, `PRAGMA journal_mode`))
	assert.Equal(t, "wal", mode)

	var tables []string
	require.NoError(t, st.DB.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`))
	assert.Equal(t, []string{"offline_bookings", "reference_snapshots", "sync_registrations"}, tables)

	require.NoError(t, st.Close())

	t.Run("reopen keeps the schema version", func(t *testing.T) {
		again, err := store.Open(ctx, path)
		require.NoError(t, err)

		defer again.Close()

		version, err := again.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})
}

func TestOpen_NewerSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "frontdesk.db")

	st, err := store.Open(ctx, path)
	require.NoError(t, err)

	_, err = st.DB.ExecContext(ctx, `PRAGMA user_version = 99`)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = store.Open(ctx, path)
	assert.ErrorContains(t, err, "newer than supported")
}

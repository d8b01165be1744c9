package store

//nolint:revive
import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "sqlite3"

	busyTimeout = 5 * time.Second
)

// migrations are applied in order; the store's PRAGMA user_version counts how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS offline_bookings (
		offline_id            TEXT PRIMARY KEY,
		provisional_reference TEXT      NOT NULL,
		accommodation_id      TEXT      NOT NULL,
		package_id            TEXT,
		check_in_date         TEXT      NOT NULL,
		check_out_date        TEXT      NOT NULL,
		guests                INTEGER   NOT NULL,
		guest_name            TEXT      NOT NULL,
		guest_email           TEXT      NOT NULL,
		guest_phone           TEXT      NOT NULL DEFAULT '',
		special_requests      TEXT      NOT NULL DEFAULT '',
		total_amount          REAL,
		sync_status           TEXT      NOT NULL DEFAULT 'pending'
			CHECK (sync_status IN ('pending', 'synced', 'failed')),
		attempts              INTEGER   NOT NULL DEFAULT 0,
		last_error            TEXT      NOT NULL DEFAULT '',
		server_reference      TEXT,
		created_at            TIMESTAMP NOT NULL,
		updated_at            TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS offline_bookings_sync_status_idx ON offline_bookings (sync_status);
	CREATE INDEX IF NOT EXISTS offline_bookings_created_at_idx ON offline_bookings (created_at);

	CREATE TABLE IF NOT EXISTS reference_snapshots (
		kind       TEXT PRIMARY KEY,
		payload    BLOB      NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sync_registrations (
		tag           TEXT PRIMARY KEY,
		registered_at TIMESTAMP NOT NULL,
		last_fired_at TIMESTAMP
	);`,
}

// Store is the front desk's durable SQLite file, shared by every client process.
type Store struct {
	DB   *sqlx.DB
	path string
}

// Open opens or creates the store at path and migrates it to the latest schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.Open(driverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("error opening store %s: %w", path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()

		return nil, fmt.Errorf("error connecting to store %s: %w", path, err)
	}

	store := &Store{DB: db, path: path}

	if err := store.migrate(ctx); err != nil {
		db.Close()

		return nil, err
	}

	return store, nil
}

func dsn(path string) string {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", fmt.Sprint(busyTimeout.Milliseconds()))
	params.Set("_txlock", "immediate")
	params.Set("_foreign_keys", "on")

	return "file:" + path + "?" + params.Encode()
}

// Version returns the applied schema version.
func (s *Store) Version(ctx context.Context) (int, error) {
	var version int
	if err := s.DB.GetContext(ctx, &version, `PRAGMA user_version`); err != nil {
		return 0, fmt.Errorf("error reading store version: %w", err)
	}

	return version, nil
}

func (s *Store) migrate(ctx context.Context) error {
	version, err := s.Version(ctx)
	if err != nil {
		return err
	}

	if version > len(migrations) {
		return fmt.Errorf("store %s has schema version %d, newer than supported %d", s.path, version, len(migrations))
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.DB.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("error starting store migration: %w", err)
		}

		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			tx.Rollback()

			return fmt.Errorf("error applying store migration %d: %w", i+1, err)
		}

		// PRAGMA does not take bind parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			tx.Rollback()

			return fmt.Errorf("error recording store version %d: %w", i+1, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("error committing store migration %d: %w", i+1, err)
		}

		log.Info().Int("version", i+1).Str("path", s.path).Msg("Store migration applied")
	}

	return nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

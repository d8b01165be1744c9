package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"resort/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

// migrations table is carried by golang-migrate's x-migrations-table option.
func migrationURL(cfg *config.Config) string {
	dsn := cfg.DB.Postgres.Write.URL(cfg.DB.Postgres.Prefix)

	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		dsn += "&x-migrations-table=" + url.QueryEscape(table)
	}

	return dsn
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, migrationURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

var steps = map[Direction]func(*migrate.Migrate) error{
	DirectionUp:     (*migrate.Migrate).Up,
	DirectionDown:   func(mig *migrate.Migrate) error { return mig.Steps(-1) },
	DirectionStepUp: func(mig *migrate.Migrate) error { return mig.Steps(1) },
	DirectionDrop:   (*migrate.Migrate).Down,
}

// Migrate moves the resort schema in the given direction.
func Migrate(cfg *config.Config, direction Direction) error {
	step, ok := steps[direction]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", direction, err)
	}

	version, dirty, _ := mig.Version()

	log.Info().
		Str("direction", string(direction)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migration finished")

	return nil
}

// Version reports the applied schema version. A database without migrations reports 0.
func Version(cfg *config.Config) (uint, bool, error) {
	mig, err := open(cfg)
	if err != nil {
		return 0, false, err
	}

	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("error reading schema version: %w", err)
	}

	return version, dirty, nil
}

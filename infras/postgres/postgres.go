package postgres

//nolint:revive
import (
	"errors"
	"resort/config"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Builder renders squirrel statements with postgres placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Connection splits reads from writes so list queries can hit a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", pg.Read, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", pg.Write, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Close releases both pools. A shared pool is closed once.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

func connect(name string, endpoint config.PostgresEndpoint, prefix string, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", prefix+endpoint.Name).
		Logger()

	attempts := max(maxRetry, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.URL(prefix))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		if attempt < attempts {
			time.Sleep(time.Duration(waitSeconds) * time.Second)
		}
	}

	logger.Error().Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}

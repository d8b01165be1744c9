package logger

import (
	"io"
	"os"
	"resort/config"
	"resort/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human readable lines in development and JSON lines anywhere else.
func InitLogger(cfg *config.Config) {
	if cfg.Server.Env == constant.Empty || cfg.Server.Env == constant.ServerEnvDevelopment {
		InitConsoleLogger(os.Stdout)

		return
	}

	InitJSONLogger(os.Stdout)
}

// InitConsoleLogger sends log lines to out, so command output on stdout stays clean.
func InitConsoleLogger(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
}

func InitJSONLogger(out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL, falling back to trace when it is missing or invalid.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("log level set")
}

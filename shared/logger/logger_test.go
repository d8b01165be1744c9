package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"resort/config"
	"resort/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitJSONLogger(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer

	logger.InitJSONLogger(&buf)
	log.Info().Str("reference", "VIL-STD-2605-001").Msg("booking created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booking created", line["message"])
	assert.Equal(t, "VIL-STD-2605-001", line["reference"])
	assert.Contains(t, line, "time")
}

func TestInitConsoleLogger(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer

	logger.InitConsoleLogger(&buf)
	log.Warn().Msg("server unreachable")

	assert.Contains(t, buf.String(), "server unreachable")
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("queue storage unavailable"))

	assert.Contains(t, buf.String(), "queue storage unavailable")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "disabled", want: zerolog.Disabled},
		{level: "", want: zerolog.TraceLevel},
		{level: "chatty", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreLogger(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

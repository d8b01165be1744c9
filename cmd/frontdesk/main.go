package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"resort/config"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg := config.Get()

	logger.InitConsoleLogger(os.Stderr)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "frontdesk",
		Usage: "take resort bookings at the front desk, online or offline",
		Commands: []*cli.Command{
			bookCommand(),
			historyCommand(),
			retryCommand(),
			syncCommand(),
			catalogCommand(),
			agentCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("frontdesk command failed")
		stop()
		os.Exit(1)
	}
}

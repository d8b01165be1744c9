package main

import (
	"resort/config"
	"resort/di"
	"resort/helper"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Migrate(cfg, helper.DirectionUp); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database on startup")
		}
	}

	server := di.InitializeService()
	server.Serve()
}

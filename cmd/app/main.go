package main

import (
	"safari/config"
	"safari/di"
	"safari/helper"
	"safari/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title						Safari API
//	@version					1.0
//	@description				Room, reservation and activity management for tours and safaris.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	app.HTTP.OnShutdown(app.Scheduler.Stop)
	app.HTTP.Serve()
}

package main

import (
	"cowork/config"
	"cowork/di"
	"cowork/helper"
	"cowork/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Cowork Booking API
// @version 1.0
// @description Meeting-room booking and credit accounting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Runner(cfg, helper.ActionUp); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations on startup")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

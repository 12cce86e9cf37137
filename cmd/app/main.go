package main

import (
	"pms/config"
	"pms/di"
	"pms/helper"
	"pms/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						PMS API
// @version					1.0
// @description				Hotel property management backend: rooms, guests, bookings, availability, housekeeping, expenses and staff.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @description				Type "Bearer" followed by a space and the access token.
// @in							header
// @name						Authorization
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.InitLoggerFor(cfg)

	// sqlite files are created on demand so they always start migrated
	if cfg.DB.Driver == config.DriverSQLite || cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

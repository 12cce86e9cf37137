package helper

//nolint:revive
import (
	"errors"
	"fmt"

	"pms/config"
	"pms/infras/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// MigrationSource points at the migration files of the configured driver.
func MigrationSource(cfg *config.Config) string {
	return "file://migrations/" + cfg.DB.Driver
}

// DatabaseURL builds the golang-migrate URL for the configured driver.
func DatabaseURL(cfg *config.Config) string {
	if cfg.DB.Driver == config.DriverSQLite {
		return "sqlite3://" + database.SQLiteDSN(cfg.DB.SQLite.Path)[len("file:"):]
	}

	url := database.PostgresDSN(
		cfg.DB.Postgres.Write.Username,
		cfg.DB.Postgres.Write.Password,
		cfg.DB.Postgres.Write.Host,
		cfg.DB.Postgres.Write.Port,
		getDBName(cfg, cfg.DB.Postgres.Write.Name),
		cfg.DB.Postgres.Write.SSLMode,
	)

	if cfg.DB.Postgres.MigrationTable != "" {
		url += "&x-migrations-table=" + cfg.DB.Postgres.MigrationTable
	}

	return url
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(MigrationSource(cfg), DatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Str("driver", cfg.DB.Driver).Msg("Database migration completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}

package database

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"pms/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10

	sqliteDriverName = "sqlite3"
)

// Connection splits reads and writes. On SQLite both point at the same handle.
type Connection struct {
	Driver string
	Read   *sqlx.DB
	Write  *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	if cfg.DB.Driver == config.DriverSQLite {
		db := CreateSQLiteConnection(cfg.DB.SQLite.Path)

		return &Connection{Driver: config.DriverSQLite, Read: db, Write: db}
	}

	return &Connection{
		Driver: config.DriverPostgres,
		Read:   CreatePostgresReadConn(*cfg),
		Write:  CreatePostgresWriteConn(*cfg),
	}
}

// Close releases both handles.
func (c *Connection) Close() error {
	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	return nil
}

// SQLiteDSN enables foreign keys and a busy timeout so concurrent writers wait instead of failing.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

func CreateSQLiteConnection(path string) *sqlx.DB {
	db, err := sqlx.Connect(sqliteDriverName, SQLiteDSN(path))
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open sqlite database")
	}

	// sqlite serialises writers
	db.SetMaxOpenConns(1)

	log.Info().Str("path", path).Msg("Connected to database")

	return db
}

func getDBName(cfg config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(cfg config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		cfg.DB.Postgres.Write.Username,
		cfg.DB.Postgres.Write.Password,
		cfg.DB.Postgres.Write.Host,
		cfg.DB.Postgres.Write.Port,
		getDBName(cfg, cfg.DB.Postgres.Write.Name),
		cfg.DB.Postgres.Write.SSLMode,
		cfg.DB.Postgres.MaxRetry,
		cfg.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(cfg config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		cfg.DB.Postgres.Read.Username,
		cfg.DB.Postgres.Read.Password,
		cfg.DB.Postgres.Read.Host,
		cfg.DB.Postgres.Read.Port,
		getDBName(cfg, cfg.DB.Postgres.Read.Name),
		cfg.DB.Postgres.Read.SSLMode,
		cfg.DB.Postgres.MaxRetry,
		cfg.DB.Postgres.RetryWaitTime,
	)
}

// PostgresDSN builds a lib/pq connection URL.
func PostgresDSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection retries until the server answers or maxRetry is spent.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := PostgresDSN(username, password, host, port, dbName, sslMode)

	maxRetry = max(maxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Str("dbName", dbName).Msg("Giving up connecting to database")

	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-tasks/internal/config"
	"github.com/adanyl0v/go-tasks/internal/storage"
	"github.com/adanyl0v/go-tasks/internal/storage/postgres"
	"github.com/adanyl0v/go-tasks/internal/storage/sqlite"
)

var globalStorage storage.Storage

// MustOpenStorage connects to the configured database and
// creates the schema if it is missing.
func MustOpenStorage() {
	switch driver := config.Global().Storage.Driver; driver {
	case storage.DriverPostgres:
		mustConnectPostgres()
	case storage.DriverSQLite:
		mustOpenSQLite()
	default:
		err := fmt.Errorf("unknown storage driver: %s", driver)
		logger := componentLogger(componentStorage)
		logger.Error().
			Err(err).
			Msg("failed to open storage")
		panic(err)
	}
}

func CloseStorage() {
	logger := componentLogger(componentStorage)

	err := globalStorage.Close()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to close storage")
		return
	}
	logger.Info().Msg("closed storage")
}

func mustOpenSQLite() {
	logger := componentLogger(componentStorage)

	cfg := config.Global().SQLite

	s, err := sqlite.Open(context.Background(), cfg.Path)
	if err != nil {
		logger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open sqlite")
		panic(err)
	}
	globalStorage = s

	logger.Info().
		Str("path", cfg.Path).
		Msg("opened sqlite")
}

func mustConnectPostgres() {
	logger := componentLogger(componentStorage)

	cfg := config.Global().Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		logger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}

	s := postgres.New(pool)
	err = s.Migrate(ctx)
	if err != nil {
		pool.Close()
		logger.Error().
			Err(err).
			Msg("failed to create postgres schema")
		panic(err)
	}
	globalStorage = s

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")
}

package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-tasks/internal/config"
)

func MustReadConfig() {
	cfg, err := config.NewReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read config")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("storage_driver", cfg.Storage.Driver).
		Msg("read config")

	config.SetGlobal(cfg)
}

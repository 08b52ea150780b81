package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/adanyl0v/go-tasks/internal/storage"
)

type Reader interface {
	Read() (*Config, error)
}

// NewReader returns a FileReader if CONFIG_PATH is set and an EnvReader otherwise.
func NewReader() Reader {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return NewFileReader(path)
	}
	return NewEnvReader()
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// FileReader reads a YAML, JSON, TOML or .env file; environment
// variables override values from the file.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.path, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", cfg.Env)
	}

	switch cfg.Storage.Driver {
	case storage.DriverSQLite:
	case storage.DriverPostgres:
		if cfg.Postgres.Username == "" || cfg.Postgres.Database == "" {
			return fmt.Errorf("postgres username and database are required")
		}
	default:
		return fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
	return nil
}

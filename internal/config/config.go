package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string         `env:"ENV" yaml:"env" env-required:"true"`
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
	Session  SessionConfig  `yaml:"session"`
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" yaml:"host" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" yaml:"port" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" env-default:"5s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" yaml:"driver" env-default:"sqlite"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" yaml:"path" env-default:"todo.db"`
}

// PostgresConfig is only read when the storage driver is postgres.
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" yaml:"host" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" yaml:"port" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" yaml:"username"`
	Password       string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database       string        `env:"POSTGRES_DATABASE" yaml:"database"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" yaml:"ssl_mode" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" yaml:"connect_timeout" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" yaml:"ping_timeout" env-default:"10s"`
}

type SessionConfig struct {
	SecretKey string `env:"SECRET_KEY" yaml:"secret_key" env-required:"true"`
	Issuer    string `env:"SESSION_ISSUER" yaml:"issuer" env-default:"go-tasks"`
	// TTL bounds sessions created without "remember me".
	TTL time.Duration `env:"SESSION_TTL" yaml:"ttl" env-default:"24h"`
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Defaults(t *testing.T) {
	t.Setenv("ENV", EnvLocal)
	t.Setenv("SECRET_KEY", "secret")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "todo.db", cfg.SQLite.Path)
	assert.Equal(t, "secret", cfg.Session.SecretKey)
	assert.Equal(t, "go-tasks", cfg.Session.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestEnvReader_Postgres(t *testing.T) {
	t.Setenv("ENV", EnvProd)
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("POSTGRES_USERNAME", "tasks")
	t.Setenv("POSTGRES_DATABASE", "tasks")
	t.Setenv("POSTGRES_PORT", "6432")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 6432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
}

func TestEnvReader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing secret key",
			env:  map[string]string{"ENV": EnvDev},
		},
		{
			name: "unknown env",
			env:  map[string]string{"ENV": "staging", "SECRET_KEY": "secret"},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"ENV": EnvDev, "SECRET_KEY": "secret", "STORAGE_DRIVER": "mysql"},
		},
		{
			name: "postgres without database",
			env: map[string]string{
				"ENV":               EnvDev,
				"SECRET_KEY":        "secret",
				"STORAGE_DRIVER":    "postgres",
				"POSTGRES_USERNAME": "tasks",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"ENV", "SECRET_KEY", "STORAGE_DRIVER", "POSTGRES_USERNAME", "POSTGRES_DATABASE"} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := NewEnvReader().Read()
			assert.Error(t, err)
		})
	}
}

func TestFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `env: dev
http:
  port: "9090"
storage:
  driver: sqlite
sqlite:
  path: /tmp/tasks.db
session:
  secret_key: from-file
  ttl: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewFileReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "/tmp/tasks.db", cfg.SQLite.Path)
	assert.Equal(t, "from-file", cfg.Session.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
}

func TestFileReader_MissingFile(t *testing.T) {
	_, err := NewFileReader(filepath.Join(t.TempDir(), "absent.yaml")).Read()
	assert.Error(t, err)
}

func TestNewReader(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.IsType(t, EnvReader{}, NewReader())

	t.Setenv("CONFIG_PATH", "config.yaml")
	assert.Equal(t, NewFileReader("config.yaml"), NewReader())
}

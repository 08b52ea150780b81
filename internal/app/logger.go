package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/config"
)

const serviceName = "go-tasks"

// Components get their own sub-logger tagged with one of these names.
const (
	componentStorage  = "storage"
	componentHTTP     = "http"
	componentAuth     = "auth"
	componentSessions = "sessions"
	componentTasks    = "tasks"
)

var levelByEnv = map[string]zerolog.Level{
	config.EnvLocal: zerolog.TraceLevel,
	config.EnvDev:   zerolog.DebugLevel,
	config.EnvProd:  zerolog.InfoLevel,
}

var globalLogger zerolog.Logger

// InitDefaultLogger sets up a JSON logger used until the config is read.
func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"
	zerolog.DurationFieldUnit = time.Millisecond

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

// MustInitApplicationLogger applies the level and output of the configured env.
// Only the local env logs caller locations and writes human-readable lines.
func MustInitApplicationLogger() {
	env := config.Global().Env

	level, ok := levelByEnv[env]
	if !ok {
		globalLogger.Error().
			Str("env", env).
			Msg("unknown env")
		panic(fmt.Errorf("unknown env: %s", env))
	}
	zerolog.SetGlobalLevel(level)

	globalLogger = globalLogger.Output(logWriter(env))
	if env == config.EnvLocal {
		globalLogger = globalLogger.With().Caller().Logger()
	}

	globalLogger.Info().
		Str("env", env).
		Stringer("level", level).
		Msg("initialized application logger")
}

func logWriter(env string) io.Writer {
	if env != config.EnvLocal {
		return os.Stdout
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.DateTime,
	}
}

func componentLogger(component string) zerolog.Logger {
	return globalLogger.With().
		Str("component", component).
		Logger()
}

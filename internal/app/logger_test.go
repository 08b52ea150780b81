package app

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-tasks/internal/config"
)

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })
	globalLogger = zerolog.New(&buf).With().Str("service", serviceName).Logger()

	logger := componentLogger(componentTasks)
	logger.Info().Int64("task_id", 7).Msg("created task")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, componentTasks, entry["component"])
	assert.Equal(t, serviceName, entry["service"])
	assert.EqualValues(t, 7, entry["task_id"])
}

func TestLevelByEnv(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, levelByEnv[config.EnvLocal])
	assert.Equal(t, zerolog.DebugLevel, levelByEnv[config.EnvDev])
	assert.Equal(t, zerolog.InfoLevel, levelByEnv[config.EnvProd])
	assert.Len(t, levelByEnv, 3)
}

func TestLogWriter(t *testing.T) {
	assert.IsType(t, zerolog.ConsoleWriter{}, logWriter(config.EnvLocal))
	assert.Equal(t, os.Stdout, logWriter(config.EnvProd))
}

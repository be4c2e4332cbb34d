package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/validacpf/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())

	require.NotNil(t, svc)
	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestLoggerService_NilSafe(t *testing.T) {
	var svc *LoggerService
	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestNewLogger_JSONFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "info"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("k", "v").Msg("hello")
	log.Debug().Msg("dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "production", entry["environment"])
	assert.Equal(t, "v", entry["k"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	log := WithTraceContext(base, nil)
	log.Info().Msg("x")

	assert.NotContains(t, buf.String(), "trace.id")
}

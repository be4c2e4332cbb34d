package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("VALIDACPF_PRIMARY.ENV", "production")
	t.Setenv("VALIDACPF_SERVER.PORT", "9090")
	t.Setenv("VALIDACPF_SERVER.READ_TIMEOUT", "5")
	t.Setenv("VALIDACPF_OBSERVABILITY.LOGGING.LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, 30, cfg.Server.WriteTimeout)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("VALIDACPF_OBSERVABILITY.LOGGING.LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("VALIDACPF_SERVER.IDLE_TIMEOUT", "0")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	tests := []struct {
		name string
		env  string
		lvl  string
		want string
	}{
		{"explicit level wins", "production", "error", "error"},
		{"production default", "production", "", "info"},
		{"development default", "development", "", "debug"},
		{"other env default", "staging", "", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultObservabilityConfig()
			c.Environment = tt.env
			c.Logging.Level = tt.lvl
			assert.Equal(t, tt.want, c.GetLogLevel())
		})
	}
}

func TestObservabilityConfig_ValidateFormat(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Format = "xml"
	assert.Error(t, c.Validate())

	c.Logging.Format = "console"
	assert.NoError(t, c.Validate())
}

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/validacpf/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresDependencies(t *testing.T) {
	log := zerolog.Nop()

	_, err := New(nil, &log, nil)
	assert.Error(t, err)

	_, err = New(config.DefaultConfig(), nil, nil)
	assert.Error(t, err)
}

func TestStart_WithoutSetup(t *testing.T) {
	log := zerolog.Nop()
	s, err := New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServer_UsesConfig(t *testing.T) {
	log := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Server.Port = "18080"
	cfg.Server.ReadTimeout = 7

	s, err := New(cfg, &log, nil)
	require.NoError(t, err)

	s.SetupHTTPServer(http.NotFoundHandler())
	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":18080", s.httpServer.Addr)
	assert.Equal(t, 7*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)
}

func TestShutdown_NotStarted(t *testing.T) {
	log := zerolog.Nop()
	s, err := New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)
	s.SetupHTTPServer(http.NotFoundHandler())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, s.Shutdown(ctx))
}

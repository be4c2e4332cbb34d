package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/deppfellow/validacpf/internal/config"
	"github.com/deppfellow/validacpf/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	log := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)

	services, err := NewServices(s)
	require.NoError(t, err)
	return services
}

func TestCPFService_Validate(t *testing.T) {
	svc := newTestServices(t).CPF

	tests := []struct {
		name      string
		candidate string
		valid     bool
		formatted string
	}{
		{"valid digits", "52998224725", true, "529.982.247-25"},
		{"valid punctuated", "529.982.247-25", true, "529.982.247-25"},
		{"checksum mismatch", "52998224726", false, ""},
		{"repdigit", "11111111111", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Validate(context.Background(), tt.candidate)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.formatted, res.Formatted)
		})
	}
}

func TestCPFService_DoesNotLogCandidate(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s, err := server.New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)
	svc := NewCPFService(s)

	// Without a request logger in ctx the service falls back to a no-op
	// logger, so nothing may reach the server logger either.
	svc.Validate(context.Background(), "52998224725")
	assert.NotContains(t, buf.String(), "52998224725")
}

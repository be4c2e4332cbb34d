package service

import (
	"context"
	"time"

	"github.com/deppfellow/validacpf/internal/cpf"
	"github.com/deppfellow/validacpf/internal/middleware"
	"github.com/deppfellow/validacpf/internal/server"
)

// CPFValidationEvent is the New Relic custom event recorded per validation.
const CPFValidationEvent = "CPFValidation"

// CPFResult is the outcome of validating a candidate.
type CPFResult struct {
	Valid bool

	// Formatted is the masked CPF (ddd.ddd.ddd-dd), set only when Valid.
	Formatted string
}

type CPFService struct {
	server *server.Server
}

func NewCPFService(s *server.Server) *CPFService {
	return &CPFService{
		server: s,
	}
}

// Validate runs the CPF checksum over candidate.
//
// The candidate itself is personal data and is never logged; only its
// normalized length and the outcome are.
func (s *CPFService) Validate(ctx context.Context, candidate string) CPFResult {
	start := time.Now()
	logger := middleware.LoggerFromContext(ctx)

	logger.Info().Msg("starting CPF validation")

	formatted, valid := cpf.Format(candidate)
	digits := len(cpf.Normalize(candidate))

	logger.Debug().
		Bool("valid", valid).
		Int("digits", digits).
		Dur("duration", time.Since(start)).
		Msg("CPF validation finished")

	if app := s.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent(CPFValidationEvent, map[string]interface{}{
			"valid":  valid,
			"digits": digits,
		})
	}

	return CPFResult{
		Valid:     valid,
		Formatted: formatted,
	}
}

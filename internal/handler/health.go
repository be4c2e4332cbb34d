package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/validacpf/internal/cpf"
	"github.com/deppfellow/validacpf/internal/middleware"
	"github.com/deppfellow/validacpf/internal/server"
	"github.com/labstack/echo/v4"
)

// Self-check fixtures: one number that must pass and one that must not.
const (
	healthKnownValidCPF   = "529.982.247-25"
	healthKnownInvalidCPF = "111.111.111-11"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports the service status. The service has no external
// dependencies, so the only check is a validator self-test.
//
// It returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	checkStart := time.Now()
	if cpf.Validate(healthKnownValidCPF) && !cpf.Validate(healthKnownInvalidCPF) {
		checks["cpf_validator"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
	} else {
		isHealthy = false
		checks["cpf_validator"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(checkStart).String(),
			"error":         "validator self-check failed",
		}

		logger.Error().Msg("cpf validator self-check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type": "cpf_validator",
				"operation":  "health_check",
			})
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

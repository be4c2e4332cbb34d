package handler

import (
	"github.com/deppfellow/validacpf/internal/server"
	"github.com/deppfellow/validacpf/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	CPF     *CPFHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		CPF:     NewCPFHandler(s, services.CPF),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}

package service

import (
	"github.com/deppfellow/validacpf/internal/server"
)

// Services groups all business services.
type Services struct {
	CPF *CPFService
}

func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		CPF: NewCPFService(s),
	}, nil
}

package handler

import (
	"net/http"

	"github.com/deppfellow/validacpf/internal/errs"
	"github.com/deppfellow/validacpf/internal/model"
	"github.com/deppfellow/validacpf/internal/server"
	"github.com/deppfellow/validacpf/internal/service"
	"github.com/labstack/echo/v4"
)

// MessageValidCPF is the success message.
const MessageValidCPF = "Valid CPF."

type CPFHandler struct {
	Handler
	cpfService *service.CPFService
}

func NewCPFHandler(s *server.Server, cpfService *service.CPFService) *CPFHandler {
	return &CPFHandler{
		Handler:    NewHandler(s),
		cpfService: cpfService,
	}
}

// ValidateCPF answers 200 "Valid CPF." or 400 "Invalid CPF.". Missing or
// unparseable input never gets here; the binder reports it.
func (h *CPFHandler) ValidateCPF(c echo.Context, req *model.ValidateCPFRequest) (*model.ValidateCPFResponse, error) {
	res := h.cpfService.Validate(c.Request().Context(), req.Candidate())
	if !res.Valid {
		return nil, errs.NewInvalidCPFError()
	}

	return &model.ValidateCPFResponse{
		Valid:     true,
		Message:   MessageValidCPF,
		Formatted: res.Formatted,
	}, nil
}

// ValidateCPFRoute is the echo.HandlerFunc for POST /api/fnvalidacpf.
func (h *CPFHandler) ValidateCPFRoute() echo.HandlerFunc {
	return Handle[*model.ValidateCPFRequest, *model.ValidateCPFResponse](h.Handler, h.ValidateCPF, http.StatusOK, func() *model.ValidateCPFRequest {
		return &model.ValidateCPFRequest{}
	})
}

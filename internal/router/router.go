// Package router builds the Echo instance: it installs the middleware chain
// and maps each path to its handler.
package router

import (
	"net/http"

	"github.com/deppfellow/validacpf/internal/handler"
	"github.com/deppfellow/validacpf/internal/middleware"
	"github.com/deppfellow/validacpf/internal/server"
	"github.com/labstack/echo/v4"
)

// ValidateCPFPath is the public validation route.
const ValidateCPFPath = "/api/fnvalidacpf"

// NewRouter returns the fully wired HTTP handler for s.
//
// Middleware order matters: the request ID must exist before the New Relic
// transaction and the request-scoped logger are built, and Recover sits
// innermost so a panic still goes through the request logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(r, h)

	api := r.Group("/api")
	api.Add(http.MethodPost, "/fnvalidacpf", h.CPF.ValidateCPFRoute(),
		middleware.DefaultContentType(echo.MIMEApplicationJSON))

	return r
}

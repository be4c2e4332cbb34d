package middleware

import (
	"github.com/labstack/echo/v4"
)

// DefaultContentType sets the request Content-Type to contentType when the
// client sent a body without one, so the binder can still parse it.
func DefaultContentType(contentType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Header.Get(echo.HeaderContentType) == "" {
				req.Header.Set(echo.HeaderContentType, contentType)
			}
			return next(c)
		}
	}
}

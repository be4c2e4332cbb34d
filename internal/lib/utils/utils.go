// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// WantsJSON reports whether the request's Accept header explicitly names
// application/json. Wildcards such as */* do not count: without an explicit
// request, responses are rendered as plain text.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)
	if accept == "" {
		return false
	}

	for _, part := range strings.Split(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == echo.MIMEApplicationJSON && params["q"] != "0" {
			return true
		}
	}
	return false
}

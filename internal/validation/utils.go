package validation

import (
	"errors"
	"strings"

	"github.com/deppfellow/validacpf/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// BindErrorMapper is implemented by payloads that want to decide which
// error a body parsing failure turns into.
type BindErrorMapper interface {
	BindError(err error) error
}

// BindAndValidate binds request data into payload and validates it.
//
//  1. c.Bind(payload) populates payload from the body.
//  2. payload.Validate() applies the validation rules.
//
// payload must be a pointer. Errors are always *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		if mapper, ok := payload.(BindErrorMapper); ok {
			return mapper.BindError(err)
		}
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		// Payloads may already speak the HTTP error language.
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts the client-facing part of an Echo bind error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

// extractValidationError turns validator tag failures into field errors.
// Tags other than "required" are reported by name.
func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed: " + err.Error(), nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())

		msg := "is required"
		if fe.Tag() != "required" {
			msg = "failed " + fe.Tag()
			if fe.Param() != "" {
				msg += "=" + fe.Param()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

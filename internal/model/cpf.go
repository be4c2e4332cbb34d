package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/deppfellow/validacpf/internal/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CandidateText is the text form of the "cpf" JSON value.
//
// Strings are taken verbatim so leading zeros and punctuation survive.
// Integral numbers are rendered as plain integers, so 52998224725,
// 52998224725.0 and 5.2998224725e10 all become "52998224725". Any other
// JSON value is kept as its compact literal.
type CandidateText string

// maxExactFloat is the largest integer a float64 holds exactly (2^53).
const maxExactFloat = 1 << 53

func (t *CandidateText) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = CandidateText(s)
		return nil

	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = CandidateText(numberText(n))
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*t = CandidateText(buf.String())
	return nil
}

// numberText renders n without a fraction or exponent when it is integral.
func numberText(n json.Number) string {
	if _, err := n.Int64(); err == nil {
		return n.String()
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (t CandidateText) String() string {
	return string(t)
}

// ValidateCPFRequest is the body of POST /api/fnvalidacpf.
//
// CPF is nil when the field is absent or null.
type ValidateCPFRequest struct {
	CPF *CandidateText `json:"cpf" validate:"required"`
}

// UnmarshalJSON reads only the exact key "cpf". encoding/json would also
// accept "CPF" or "Cpf", which are different fields.
func (r *ValidateCPFRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.CPF = nil

	raw, ok := fields["cpf"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var text CandidateText
	if err := text.UnmarshalJSON(raw); err != nil {
		return err
	}
	r.CPF = &text
	return nil
}

// Validate implements validation.Validatable.
func (r *ValidateCPFRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errs.NewCPFNotProvidedError()
	}
	return nil
}

// BindError maps any body parsing failure to the missing-CPF error.
func (r *ValidateCPFRequest) BindError(error) error {
	return errs.NewCPFNotProvidedError()
}

// Candidate returns the CPF value as text. It must only be called after
// Validate succeeded.
func (r *ValidateCPFRequest) Candidate() string {
	return r.CPF.String()
}

// ValidateCPFResponse is the success payload.
//
// In plain-text mode only Message is written.
type ValidateCPFResponse struct {
	Valid     bool   `json:"valid"`
	Message   string `json:"message"`
	Formatted string `json:"formatted,omitempty"`
}

func (r *ValidateCPFResponse) String() string {
	return r.Message
}

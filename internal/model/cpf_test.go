package model

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/validacpf/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPFRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		present bool
		want    string
	}{
		{"string", `{"cpf":"529.982.247-25"}`, true, "529.982.247-25"},
		{"leading zeros kept", `{"cpf":"00000000604"}`, true, "00000000604"},
		{"number", `{"cpf":52998224725}`, true, "52998224725"},
		{"bool", `{"cpf":true}`, true, "true"},
		{"object compacted", `{"cpf":{ "a" : 1 }}`, true, `{"a":1}`},
		{"null", `{"cpf":null}`, false, ""},
		{"absent", `{}`, false, ""},
		{"other fields only", `{"CPFX":"1"}`, false, ""},
		{"upper case key", `{"CPF":"52998224725"}`, false, ""},
		{"mixed case key", `{"Cpf":"52998224725"}`, false, ""},
		{"exact key wins", `{"CPF":"1","cpf":"52998224725"}`, true, "52998224725"},
		{"integral float", `{"cpf":52998224725.0}`, true, "52998224725"},
		{"exponent", `{"cpf":5.2998224725e10}`, true, "52998224725"},
		{"fraction kept", `{"cpf":529.5}`, true, "529.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ValidateCPFRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			if !tt.present {
				assert.Nil(t, req.CPF)
				return
			}
			require.NotNil(t, req.CPF)
			assert.Equal(t, tt.want, req.Candidate())
		})
	}
}

func TestValidateCPFRequest_UnmarshalResetsField(t *testing.T) {
	text := CandidateText("52998224725")
	req := ValidateCPFRequest{CPF: &text}

	require.NoError(t, json.Unmarshal([]byte(`{"Cpf":"1"}`), &req))
	assert.Nil(t, req.CPF)
}

func TestValidateCPFRequest_UnmarshalRejectsNonObject(t *testing.T) {
	var req ValidateCPFRequest
	assert.Error(t, json.Unmarshal([]byte(`["52998224725"]`), &req))
	assert.Error(t, json.Unmarshal([]byte(`"52998224725"`), &req))
}

func TestValidateCPFRequest_Validate(t *testing.T) {
	var missing ValidateCPFRequest
	err := missing.Validate()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeCPFNotProvided, httpErr.Code)

	// An empty string is present; the checksum rejects it later.
	empty := CandidateText("")
	present := ValidateCPFRequest{CPF: &empty}
	assert.NoError(t, present.Validate())
}

func TestValidateCPFRequest_BindError(t *testing.T) {
	var req ValidateCPFRequest
	err := req.BindError(assert.AnError)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.MessageCPFNotProvided, httpErr.Message)
}

func TestValidateCPFResponse_String(t *testing.T) {
	res := &ValidateCPFResponse{Valid: true, Message: "Valid CPF."}
	assert.Equal(t, "Valid CPF.", res.String())
}

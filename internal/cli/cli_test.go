package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Text(t *testing.T) {
	var out bytes.Buffer
	err := runCheck(&out, []string{"529.982.247-25", "52998224726"}, &checkFlags{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Equal(t, "529.982.247-25: Valid CPF.\n52998224726: Invalid CPF.\n", out.String())
}

func TestCheck_AllValid(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(&out, []string{"52998224725", "00000000604"}, &checkFlags{}))
}

func TestCheck_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(&out, []string{"52998224725"}, &checkFlags{json: true}))

	var res checkResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, checkResult{
		Input:     "52998224725",
		Valid:     true,
		Message:   "Valid CPF.",
		Formatted: "529.982.247-25",
	}, res)
}

func TestRootCommand_CheckSubcommand(t *testing.T) {
	cmd := NewRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "111.111.111-11"})

	err := cmd.Execute()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, strings.HasSuffix(out.String(), "111.111.111-11: Invalid CPF.\n"))
}

func TestRootCommand_CheckRequiresArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check"})

	assert.Error(t, cmd.Execute())
}

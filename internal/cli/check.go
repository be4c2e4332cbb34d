package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deppfellow/validacpf/internal/cpf"
	"github.com/deppfellow/validacpf/internal/errs"
)

type checkFlags struct {
	json bool
}

// checkResult is one line of "check --json" output.
type checkResult struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Message   string `json:"message"`
	Formatted string `json:"formatted,omitempty"`
}

// NewCheckCommand creates "validacpf check", which validates CPFs offline
// with the same algorithm the HTTP endpoint uses.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check CPF [CPF...]",
		Short: "Validate one or more CPFs without starting the server",
		Long: `Validate one or more CPFs and print one result per argument.

The exit status is 0 when every CPF is valid and 2 otherwise.

Examples:
  validacpf check 529.982.247-25
  validacpf check --json 52998224725 11111111111`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Output one JSON object per line")

	return cmd
}

func runCheck(out io.Writer, args []string, flags *checkFlags) error {
	allValid := true
	enc := json.NewEncoder(out)

	for _, arg := range args {
		res := checkResult{Input: arg, Message: errs.MessageInvalidCPF}
		if formatted, ok := cpf.Format(arg); ok {
			res.Valid = true
			res.Message = "Valid CPF."
			res.Formatted = formatted
		} else {
			allValid = false
		}

		if flags.json {
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", arg, res.Message)
	}

	if !allValid {
		return &ExitError{Code: 2}
	}
	return nil
}

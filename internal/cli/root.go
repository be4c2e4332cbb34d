// Package cli defines the cobra commands of the validacpf binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information, injected by main through ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ExitError carries a specific exit code up to Execute.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// NewRootCommand builds the root command. Running it without a subcommand
// starts the HTTP server.
func NewRootCommand() *cobra.Command {
	serve := NewServeCommand()

	rootCmd := &cobra.Command{
		Use:   "validacpf",
		Short: "Brazilian CPF validation service",
		Long: `validacpf serves POST /api/fnvalidacpf, which validates a Brazilian
taxpayer number (CPF) with the modulo-11 check digit algorithm.

Configuration is read from VALIDACPF_* environment variables and an
optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
	}

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// Execute runs rootCmd and exits with the command's exit code.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if e, ok := err.(*ExitError); ok {
		exitErr = e
	} else {
		exitErr = &ExitError{Code: 1, Err: err}
	}

	if exitErr.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
	}
	os.Exit(exitErr.Code)
}

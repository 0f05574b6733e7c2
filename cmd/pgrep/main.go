package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/proudmuslim-dev/pgrep/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

// exitCode maps the command result to a process exit status. Errors that were
// not already reported as diagnostics are printed to stderr.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return cmd.ExitMatched
	}

	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Reported {
			fmt.Fprintf(stderr, "Error: %v\n", exitErr)
		}
		return exitErr.Code
	}

	// Flag parsing errors from cobra end up here
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return cmd.ExitFailure
}

package cmd

import "fmt"

// Exit codes returned by the pgrep command.
const (
	// ExitMatched means at least one line matched.
	ExitMatched = 0
	// ExitNoMatches means the scan succeeded but nothing matched.
	ExitNoMatches = 1
	// ExitFailure covers argument, settings, I/O and pattern errors.
	ExitFailure = 2
)

// ExitError carries the process exit code for a failed run.
// Reported is true when a diagnostic has already been written to stderr.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

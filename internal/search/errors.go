package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is returned when a pattern-mode query does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNoMatches is returned when a scan completes without a single match.
	ErrNoMatches = errors.New("no matches")
)

// PatternError reports a query that failed to compile as a regular expression.
type PatternError struct {
	Query string
	Err   error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Query, e.Err)
}

// Unwrap returns the compile error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidPattern) succeed.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// NoMatchesError reports a completed scan that found nothing. It is a
// user-facing outcome, not a technical failure.
type NoMatchesError struct {
	Query  string
	Source string
}

// Error implements the error interface for NoMatchesError.
func (e *NoMatchesError) Error() string {
	return fmt.Sprintf("pattern %q is not present in %s", e.Query, e.Source)
}

// Is makes errors.Is(err, ErrNoMatches) succeed.
func (e *NoMatchesError) Is(target error) bool {
	return target == ErrNoMatches
}

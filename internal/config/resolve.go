package config

import (
	"errors"
	"fmt"

	"github.com/proudmuslim-dev/pgrep/internal/search"
)

// CaseInsensitiveEnv is the environment variable whose presence, regardless of
// its value, switches matching to case-insensitive.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var (
	// ErrMissingArgument is returned when the query or file argument is absent.
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnexpectedArgument is returned when more than two positional arguments are given.
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// ArgumentError describes an invalid set of positional arguments.
// Kind is ErrMissingArgument or ErrUnexpectedArgument.
type ArgumentError struct {
	Kind error
	// Name is "query" or "file" for missing arguments
	Name string
	// Value is the offending argument for unexpected arguments
	Value string
}

// Error implements the error interface for ArgumentError.
func (e *ArgumentError) Error() string {
	if e.Kind == ErrUnexpectedArgument {
		return fmt.Sprintf("Unexpected argument '%s'!", e.Value)
	}
	return fmt.Sprintf("No %s supplied!", e.Name)
}

// Unwrap returns the classification sentinel.
func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Resolve builds a search configuration from positional arguments and the
// environment. args holds the positional arguments only, without the program name.
//
// Matching is case-sensitive unless CASE_INSENSITIVE is present in the
// environment. The returned config always uses pattern mode; callers switch to
// substring mode from their own settings.
func Resolve(args []string, lookupEnv LookupEnv) (search.Config, error) {
	if len(args) < 1 {
		return search.Config{}, &ArgumentError{Kind: ErrMissingArgument, Name: "query"}
	}
	if len(args) < 2 || args[1] == "" {
		return search.Config{}, &ArgumentError{Kind: ErrMissingArgument, Name: "file"}
	}
	if len(args) > 2 {
		return search.Config{}, &ArgumentError{Kind: ErrUnexpectedArgument, Value: args[2]}
	}

	ignoreCase := false
	if lookupEnv != nil {
		_, ignoreCase = lookupEnv(CaseInsensitiveEnv)
	}

	return search.Config{
		Query:      args[0],
		Source:     args[1],
		IgnoreCase: ignoreCase,
		Mode:       search.ModePattern,
	}, nil
}

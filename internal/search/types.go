package search

import "fmt"

// MatchMode selects the matching strategy applied to each line.
type MatchMode int

const (
	// ModePattern matches the query as a regular expression.
	ModePattern MatchMode = iota
	// ModeSubstring matches the query as literal text.
	ModeSubstring
)

// String returns the string representation of MatchMode.
func (m MatchMode) String() string {
	switch m {
	case ModePattern:
		return "pattern"
	case ModeSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// Config describes a single search invocation. It is a value type and is not
// modified by the engine.
type Config struct {
	// Query is the literal text or regular expression to look for
	Query string
	// Source is the path the text was loaded from, used in messages only
	Source string
	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool
	// Mode selects substring or pattern matching
	Mode MatchMode
}

// String renders the config for debug logs.
func (c Config) String() string {
	return fmt.Sprintf("query=%q source=%q ignore_case=%t mode=%s", c.Query, c.Source, c.IgnoreCase, c.Mode)
}

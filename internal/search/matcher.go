package search

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Matcher decides whether a single line satisfies a query.
type Matcher interface {
	Match(line string) bool
}

// NewMatcher builds the Matcher for cfg. It returns a *PatternError if
// cfg.Mode is ModePattern and the query does not compile.
func NewMatcher(cfg Config) (Matcher, error) {
	switch cfg.Mode {
	case ModeSubstring:
		return newSubstringMatcher(cfg.Query, cfg.IgnoreCase), nil
	default:
		return newPatternMatcher(cfg.Query, cfg.IgnoreCase)
	}
}

// SubstringMatcher matches the query as literal text.
type SubstringMatcher struct {
	needle string
	folder *cases.Caser
}

func newSubstringMatcher(query string, ignoreCase bool) *SubstringMatcher {
	m := &SubstringMatcher{needle: query}
	if ignoreCase {
		folder := cases.Fold()
		m.folder = &folder
		m.needle = folder.String(query)
	}
	return m
}

// Match reports whether line contains the query.
func (m *SubstringMatcher) Match(line string) bool {
	if m.folder != nil {
		line = m.folder.String(line)
	}
	return strings.Contains(line, m.needle)
}

// PatternMatcher matches the query as a regular expression anywhere in the line.
type PatternMatcher struct {
	re *regexp.Regexp
}

func newPatternMatcher(query string, ignoreCase bool) (*PatternMatcher, error) {
	re, err := regexp.Compile(query)
	if err != nil {
		return nil, &PatternError{Query: query, Err: err}
	}
	// Lowercasing the pattern text would turn escapes like \W into \w, so the
	// case flag is applied to the compiled expression instead.
	if ignoreCase {
		re, err = regexp.Compile("(?i)" + query)
		if err != nil {
			return nil, &PatternError{Query: query, Err: err}
		}
	}
	return &PatternMatcher{re: re}, nil
}

// Match reports whether the expression matches somewhere in line.
func (m *PatternMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}

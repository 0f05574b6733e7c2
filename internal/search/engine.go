package search

import (
	"fmt"

	"github.com/proudmuslim-dev/pgrep/internal/logger"
)

// Engine scans text for lines matching a query.
type Engine struct {
	logger logger.Logger
}

// NewEngine creates an Engine that reports scan progress to log.
// A nil log discards all messages.
func NewEngine(log logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Engine{logger: log}
}

// Search scans text line by line and returns every line satisfying cfg.
//
// The pattern is compiled before scanning; a compile failure returns a
// *PatternError and a nil Result. When the scan finishes without a match the
// returned Result is empty (never nil) and the error is a *NoMatchesError.
func (e *Engine) Search(cfg Config, text string) (*Result, error) {
	matcher, err := NewMatcher(cfg)
	if err != nil {
		e.logger.LogInfo(fmt.Sprintf("search: %v", err))
		return nil, err
	}

	e.logger.LogDebug(fmt.Sprintf("search: %s", cfg))

	result := newResult()
	lines := splitLines(text)
	for i, line := range lines {
		if matcher.Match(line) {
			result.add(i+1, line)
			e.logger.LogTrace(fmt.Sprintf("search: line %d matched", i+1))
		}
	}

	e.logger.LogInfo(fmt.Sprintf("search: scanned %d lines in %s, %d matched", len(lines), cfg.Source, result.Len()))

	if result.Empty() {
		return result, &NoMatchesError{Query: cfg.Query, Source: cfg.Source}
	}
	return result, nil
}

// Search runs a single search with a default Engine.
func Search(cfg Config, text string) (*Result, error) {
	return NewEngine(nil).Search(cfg, text)
}

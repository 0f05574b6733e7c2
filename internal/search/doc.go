// Package search implements the line-search engine behind pgrep.
//
// A search takes a Config and a text buffer, splits the buffer into lines, and
// tests every line against a Matcher. Matching lines are collected into a Result
// keyed by their 1-based line number, in scan order.
//
// # Matching strategies
//
// Two strategies exist, selected by Config.Mode:
//   - ModePattern compiles the query as an RE2 regular expression and matches it
//     anywhere within the line
//   - ModeSubstring treats the query as literal text
//
// Config.IgnoreCase is orthogonal to the strategy. Substring matching folds both
// sides with Unicode case folding; pattern matching compiles with the (?i) flag.
// The text stored in a Result is always the original line.
//
// # Outcomes
//
// Search never terminates the process. An invalid pattern returns a *PatternError
// before any line is scanned, and a scan that finds nothing returns an empty
// Result together with a *NoMatchesError:
//
//	engine := search.NewEngine(nil)
//	result, err := engine.Search(cfg, text)
//	switch {
//	case errors.Is(err, search.ErrNoMatches):
//	    // report and exit 1
//	case err != nil:
//	    // invalid pattern
//	}
//	for _, m := range result.Matches() {
//	    fmt.Printf("%d: %s\n", m.Line, m.Text)
//	}
package search

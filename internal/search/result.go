package search

// Match is a single matching line.
type Match struct {
	// Line is the 1-based line number within the source text
	Line int
	// Text is the line exactly as it appeared in the source
	Text string
}

// Result is an ordered mapping from line number to line text. Lines are
// inserted in scan order, so iteration order is ascending line number.
type Result struct {
	matches []Match
	index   map[int]int
}

func newResult() *Result {
	return &Result{
		matches: make([]Match, 0),
		index:   make(map[int]int),
	}
}

// add records a match. Line numbers must be strictly increasing; a line that
// is not greater than the last one recorded is ignored.
func (r *Result) add(line int, text string) {
	if n := len(r.matches); n > 0 && line <= r.matches[n-1].Line {
		return
	}
	r.index[line] = len(r.matches)
	r.matches = append(r.matches, Match{Line: line, Text: text})
}

// Len returns the number of matched lines.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.matches)
}

// Empty reports whether no line matched.
func (r *Result) Empty() bool {
	return r.Len() == 0
}

// Get returns the text of the given line if it matched.
func (r *Result) Get(line int) (string, bool) {
	if r == nil {
		return "", false
	}
	i, ok := r.index[line]
	if !ok {
		return "", false
	}
	return r.matches[i].Text, true
}

// Lines returns the matched line numbers in ascending order.
func (r *Result) Lines() []int {
	if r == nil {
		return nil
	}
	lines := make([]int, len(r.matches))
	for i, m := range r.matches {
		lines[i] = m.Line
	}
	return lines
}

// Matches returns a copy of the matches in ascending line order.
func (r *Result) Matches() []Match {
	if r == nil {
		return nil
	}
	out := make([]Match, len(r.matches))
	copy(out, r.matches)
	return out
}

// Map returns the matches as a plain map. Iteration order of the returned map
// is unspecified; use Matches for ordered access.
func (r *Result) Map() map[int]string {
	out := make(map[int]string, r.Len())
	if r == nil {
		return out
	}
	for _, m := range r.matches {
		out[m.Line] = m.Text
	}
	return out
}

// Package locator finds anchor positions in source text. Anchors come in
// four shapes: literal substrings, regular expressions, indentation-defined
// blocks, and marker pairs. All searches report spans in document order and
// never deduplicate overlaps; callers decide how to treat them.
//
// Lines and columns are zero-based throughout the engine; presentation
// layers convert to one-based on output.
package locator

import "fmt"

// MatchSpan is one located occurrence of an anchor.
type MatchSpan struct {
	StartLine int      `json:"start_line"`
	StartCol  int      `json:"start_col"`
	EndLine   int      `json:"end_line"`
	EndCol    int      `json:"end_col"`
	Text      string   `json:"text"`
	Groups    []string `json:"groups,omitempty"`
}

// LineCount is the number of physical lines the span covers.
func (m MatchSpan) LineCount() int {
	return m.EndLine - m.StartLine + 1
}

// Matcher locates anchor occurrences in text. Literal, regex, block, and
// marker anchors all implement it, as can external structural matchers
// whose output is normalized into MatchSpan.
type Matcher interface {
	// Locate returns every occurrence in document order. An empty slice
	// with a nil error means the anchor simply was not found.
	Locate(text string) ([]MatchSpan, error)

	// Description identifies the anchor in errors and logs.
	Description() string
}

// PatternError reports an anchor that cannot be searched for, such as an
// invalid regular expression.
type PatternError struct {
	Pattern string
	Reason  string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid pattern %q: %s: %v", e.Pattern, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

func (e *PatternError) Unwrap() error { return e.Err }

// First returns the first match in document order, which is also the
// "first match" the executor's first-only mode selects.
func First(matches []MatchSpan) (MatchSpan, bool) {
	if len(matches) == 0 {
		return MatchSpan{}, false
	}
	return matches[0], true
}

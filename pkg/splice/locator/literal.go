package locator

import "strings"

// LiteralMatcher finds a substring line by line.
type LiteralMatcher struct {
	Pattern       string
	CaseSensitive bool
	FirstOnly     bool
}

func NewLiteral(pattern string, caseSensitive bool) *LiteralMatcher {
	return &LiteralMatcher{Pattern: pattern, CaseSensitive: caseSensitive}
}

func (m *LiteralMatcher) Description() string {
	return "literal " + m.Pattern
}

func (m *LiteralMatcher) Locate(text string) ([]MatchSpan, error) {
	if m.Pattern == "" {
		return nil, &PatternError{Pattern: m.Pattern, Reason: "empty literal pattern"}
	}

	needle := m.Pattern
	if !m.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	var matches []MatchSpan
	for i, line := range SplitLines(text) {
		haystack := line
		if !m.CaseSensitive {
			haystack = strings.ToLower(line)
		}
		from := 0
		for {
			idx := strings.Index(haystack[from:], needle)
			if idx < 0 {
				break
			}
			col := from + idx
			matches = append(matches, MatchSpan{
				StartLine: i,
				StartCol:  col,
				EndLine:   i,
				EndCol:    col + len(m.Pattern),
				Text:      line[col : col+len(m.Pattern)],
			})
			if m.FirstOnly {
				return matches, nil
			}
			from = col + len(m.Pattern)
			if from >= len(haystack) {
				break
			}
		}
	}
	return matches, nil
}

// SplitLines splits text on newlines, normalizing CRLF so column math is
// stable across platforms.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

package locator

import (
	"regexp"
	"strings"
)

// RegexMatcher finds matches of a regular expression, multi-line capable.
// Flags is an optional inline-flag string such as "im" or "is".
type RegexMatcher struct {
	Pattern string
	Flags   string
}

func NewRegex(pattern, flags string) *RegexMatcher {
	return &RegexMatcher{Pattern: pattern, Flags: flags}
}

func (m *RegexMatcher) Description() string {
	return "regex " + m.Pattern
}

func (m *RegexMatcher) Locate(text string) ([]MatchSpan, error) {
	pattern := m.Pattern
	if m.Flags != "" {
		pattern = "(?" + m.Flags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: m.Pattern, Reason: "regex does not compile", Err: err}
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	index := newOffsetIndex(normalized)

	var matches []MatchSpan
	for _, loc := range re.FindAllStringSubmatchIndex(normalized, -1) {
		startLine, startCol := index.position(loc[0])
		endLine, endCol := index.position(loc[1])

		var groups []string
		for g := 1; g*2 < len(loc); g++ {
			if loc[g*2] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, normalized[loc[g*2]:loc[g*2+1]])
		}

		matches = append(matches, MatchSpan{
			StartLine: startLine,
			StartCol:  startCol,
			EndLine:   endLine,
			EndCol:    endCol,
			Text:      normalized[loc[0]:loc[1]],
			Groups:    groups,
		})
	}
	return matches, nil
}

// offsetIndex converts byte offsets into line/column pairs.
type offsetIndex struct {
	lineStarts []int
}

func newOffsetIndex(text string) *offsetIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &offsetIndex{lineStarts: starts}
}

func (x *offsetIndex) position(offset int) (line, col int) {
	lo, hi := 0, len(x.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, offset - x.lineStarts[lo]
}

package locator

import "strings"

// MarkerMatcher finds the non-greedy span between two literal markers.
// Spans may cross lines. IncludeMarkers widens each span to cover the
// markers themselves.
type MarkerMatcher struct {
	Start          string
	End            string
	IncludeMarkers bool
}

func NewMarkers(start, end string, includeMarkers bool) *MarkerMatcher {
	return &MarkerMatcher{Start: start, End: end, IncludeMarkers: includeMarkers}
}

func (m *MarkerMatcher) Description() string {
	return "markers " + m.Start + " .. " + m.End
}

func (m *MarkerMatcher) Locate(text string) ([]MatchSpan, error) {
	if m.Start == "" || m.End == "" {
		return nil, &PatternError{
			Pattern: m.Start + ".." + m.End,
			Reason:  "both markers must be non-empty",
		}
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	index := newOffsetIndex(normalized)

	var matches []MatchSpan
	offset := 0
	for {
		rel := strings.Index(normalized[offset:], m.Start)
		if rel < 0 {
			break
		}
		startAt := offset + rel
		innerFrom := startAt + len(m.Start)
		endRel := strings.Index(normalized[innerFrom:], m.End)
		if endRel < 0 {
			break
		}
		endAt := innerFrom + endRel

		lo, hi := innerFrom, endAt
		if m.IncludeMarkers {
			lo, hi = startAt, endAt+len(m.End)
		}
		startLine, startCol := index.position(lo)
		endLine, endCol := index.position(hi)
		matches = append(matches, MatchSpan{
			StartLine: startLine,
			StartCol:  startCol,
			EndLine:   endLine,
			EndCol:    endCol,
			Text:      normalized[lo:hi],
		})

		offset = endAt + len(m.End)
		if offset >= len(normalized) {
			break
		}
	}
	return matches, nil
}

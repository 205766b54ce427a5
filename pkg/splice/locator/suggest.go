package locator

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Suggestion is an advisory near-miss for an anchor that was not found.
type Suggestion struct {
	Line       int     `json:"line"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

const (
	suggestionFloor = 0.55
	maxSuggestions  = 3
)

// SuggestNearMatches scans the text for lines resembling the pattern and
// returns the closest candidates, best first. Purely advisory: the caller's
// control flow is unchanged by what it returns.
func SuggestNearMatches(text, pattern string) []Suggestion {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	var out []Suggestion
	for i, line := range SplitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		score := levenshtein.Similarity(trimmed, pattern, nil)
		if sub := containedSimilarity(trimmed, pattern); sub > score {
			score = sub
		}
		if score >= suggestionFloor && score < 1.0 {
			out = append(out, Suggestion{Line: i, Text: trimmed, Similarity: score})
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Similarity > out[b].Similarity
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// containedSimilarity scores a pattern that nearly matches a slice of the
// line rather than the whole line.
func containedSimilarity(line, pattern string) float64 {
	if len(line) <= len(pattern) {
		return 0
	}
	best := 0.0
	for i := 0; i+len(pattern) <= len(line); i++ {
		s := levenshtein.Similarity(line[i:i+len(pattern)], pattern, nil)
		if s > best {
			best = s
		}
	}
	return best
}

package resolver

import (
	"strings"

	"github.com/codeweft/weft/pkg/splice/locator"
)

// Large-file resolution first searches a head/tail sample so huge targets
// stay cheap. A match that exists only in the middle of such a file is
// missed by the sample and found by the fallback full scan, so correctness
// is preserved; callers wanting single-pass full-file behavior disable
// sampling instead.
const (
	// SampleThreshold is the line count above which sampling kicks in.
	SampleThreshold = 5000
	// SampleHead and SampleTail size the sampled window.
	SampleHead = 2000
	SampleTail = 2000
)

// SampledLocate runs the matcher against the sample window of a large text
// and falls back to the full text when the sample yields nothing. Line
// numbers in the result always refer to the full text.
func SampledLocate(m locator.Matcher, text string, fullScan bool) ([]locator.MatchSpan, error) {
	lines := locator.SplitLines(text)
	if fullScan || len(lines) <= SampleThreshold {
		return m.Locate(text)
	}

	head := strings.Join(lines[:SampleHead], "\n")
	matches, err := m.Locate(head)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return matches, nil
	}

	tailStart := len(lines) - SampleTail
	tail := strings.Join(lines[tailStart:], "\n")
	matches, err = m.Locate(tail)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		for i := range matches {
			matches[i].StartLine += tailStart
			matches[i].EndLine += tailStart
		}
		return matches, nil
	}

	// Sample had no match; pay for the full scan.
	return m.Locate(text)
}

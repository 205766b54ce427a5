package resolver

import (
	"fmt"
	"strings"

	"github.com/codeweft/weft/pkg/splice/indent"
)

// UnsafePositionError reports an insertion position that failed the
// indentation sanity check.
type UnsafePositionError struct {
	Line   int
	Reason string
}

func (e *UnsafePositionError) Error() string {
	return fmt.Sprintf("unsafe insertion at line %d: %s", e.Line+1, e.Reason)
}

// ValidateSafety rejects positions that would introduce an unindented
// fragment into a spot requiring indentation, or whose depth strays too far
// from the enclosing context. Returns nil when the position is acceptable.
func (r *Resolver) ValidateSafety(pos Position, fragment string, lines []string) error {
	if pos.Line < 0 || pos.Line > len(lines) {
		return &UnsafePositionError{Line: pos.Line, Reason: "line index outside the file"}
	}
	if !pos.IsSafe {
		return &UnsafePositionError{
			Line:   pos.Line,
			Reason: fmt.Sprintf("indentation delta exceeds %d units", SafetyThreshold),
		}
	}

	// A previous line that just opened a block demands a nested fragment;
	// inserting at depth zero there would splice a statement outside the
	// block it visually belongs to.
	if prev, ok := previousNonBlank(lines, pos.Line); ok {
		trimmedPrev := strings.TrimSpace(prev)
		if r.Dialect.OpensBlock(trimmedPrev) {
			prevDepth := indent.AnalyzeLine(prev).Depth
			firstFragment := firstNonBlankLine(fragment)
			if pos.IndentDepth <= prevDepth && !r.Dialect.ClosesBlock(strings.TrimSpace(firstFragment)) {
				return &UnsafePositionError{
					Line:   pos.Line,
					Reason: "fragment would not be indented into the block opened above it",
				}
			}
		}
	}
	return nil
}

func previousNonBlank(lines []string, before int) (string, bool) {
	for i := before - 1; i >= 0; i-- {
		if i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			return lines[i], true
		}
	}
	return "", false
}

func firstNonBlankLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/codeweft/weft/pkg/splice/indent"
)

// ValidationError reports the single structural flaw the soft check looks
// for. Full syntax validation belongs to an external validator.
type ValidationError struct {
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("fragment line %d: %s", e.Line+1, e.Reason)
}

// Validate performs a local nesting check on rendered content: a line that
// ends in a block-opening token must be followed by a deeper line, because
// the next statement is expected to be nested. It deliberately checks
// nothing else.
func (f *Formatter) Validate(content string) error {
	lines := splitNormalized(content)
	for i := 0; i < len(lines)-1; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || !endsWithOpenToken(trimmed, f.Dialect.BlockOpenTokens) {
			continue
		}
		next, ok := nextNonBlank(lines, i+1)
		if !ok {
			continue
		}
		opened := len(indent.AnalyzeLine(lines[i]).Raw)
		if len(indent.AnalyzeLine(lines[next]).Raw) <= opened {
			// Closing brackets legitimately return to the opener's level.
			if f.Dialect.ClosesBlock(strings.TrimSpace(lines[next])) {
				continue
			}
			return &ValidationError{
				Line:   next,
				Reason: "content after a block opener must be indented deeper",
			}
		}
	}
	return nil
}

func endsWithOpenToken(trimmed string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.HasSuffix(trimmed, tok) {
			return true
		}
	}
	return false
}

func nextNonBlank(lines []string, from int) (int, bool) {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i, true
		}
	}
	return 0, false
}

package indent

import (
	"strings"

	"github.com/codeweft/weft/pkg/splice/dialect"
)

// Suggester proposes the indentation for new content given the lines that
// will precede it. Keyword tables come from the dialect so the same logic
// serves differently shaped languages.
type Suggester struct {
	Dialect *dialect.Dialect
	Profile Profile
}

// NewSuggester derives the profile from the context it will be asked about.
func NewSuggester(d *dialect.Dialect, contextLines []string) *Suggester {
	if d == nil {
		d = dialect.Generic()
	}
	return &Suggester{Dialect: d, Profile: AnalyzeWindow(contextLines)}
}

// Suggest returns the leading whitespace for a fragment inserted after
// contextLines.
func (s *Suggester) Suggest(contextLines []string, fragmentHint string) string {
	return s.Profile.Indent(s.SuggestDepth(contextLines, fragmentHint))
}

// SuggestDepth computes the depth, in indentation units, for a fragment
// inserted after contextLines. fragmentHint is the fragment's first
// non-blank line; it pulls the suggestion one level back when it starts a
// block-closing construct.
func (s *Suggester) SuggestDepth(contextLines []string, fragmentHint string) int {
	anchor, ok := lastNonBlank(contextLines)
	if !ok {
		return 0
	}

	depth := AnalyzeLine(anchor).Depth
	trimmed := strings.TrimSpace(anchor)
	hint := strings.TrimSpace(fragmentHint)

	// Decorators and doc comments attach to a declaration; keep them at
	// the level of the nearest preceding declaration instead of applying
	// the open/close rules.
	if hint != "" && (s.Dialect.IsDecorator(hint) || s.Dialect.IsDocComment(hint)) {
		if declDepth, ok := s.nearestDeclarationDepth(contextLines); ok {
			return declDepth
		}
		return depth
	}

	if s.Dialect.OpensBlock(trimmed) {
		depth++
	}
	if hint != "" && s.Dialect.ClosesBlock(hint) && depth > 0 {
		depth--
	}
	return depth
}

func (s *Suggester) nearestDeclarationDepth(contextLines []string) (int, bool) {
	for i := len(contextLines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(contextLines[i])
		if trimmed == "" {
			continue
		}
		if s.Dialect.IsDeclaration(trimmed) {
			return AnalyzeLine(contextLines[i]).Depth, true
		}
	}
	return 0, false
}

func lastNonBlank(lines []string) (string, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i], true
		}
	}
	return "", false
}

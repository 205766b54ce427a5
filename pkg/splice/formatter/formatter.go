// Package formatter reshapes a raw content fragment so it splices cleanly
// into its destination: canonical line endings, trailing whitespace
// stripped, the whole fragment re-based onto the target indentation while
// its internal nesting survives.
package formatter

import (
	"strings"

	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

// Kind classifies a fragment, which drives the blank-line boundary policy.
type Kind string

const (
	Statement   Kind = "statement"
	Block       Kind = "block"
	Declaration Kind = "declaration"
)

// Fragment is the exact content ready to splice in.
type Fragment struct {
	Content         string `json:"content"`
	Kind            Kind   `json:"kind"`
	LineCount       int    `json:"line_count"`
	TrailingNewline bool   `json:"trailing_newline"`
}

// Formatter renders fragments against one dialect's keyword tables.
type Formatter struct {
	Dialect *dialect.Dialect
}

func New(d *dialect.Dialect) *Formatter {
	if d == nil {
		d = dialect.Generic()
	}
	return &Formatter{Dialect: d}
}

// Classify applies the kind heuristics: a fragment whose first non-blank
// line is a declaration is a Declaration; a multi-line fragment where some
// line opens a nested block is a Block; everything else is a Statement.
func (f *Formatter) Classify(raw string) Kind {
	lines := nonBlank(splitNormalized(raw))
	if len(lines) == 0 {
		return Statement
	}
	first := strings.TrimSpace(lines[0])
	if f.Dialect.IsDeclaration(first) {
		return Declaration
	}
	if len(lines) > 1 {
		for _, line := range lines {
			if f.Dialect.OpensBlock(strings.TrimSpace(line)) {
				return Block
			}
		}
	}
	return Statement
}

// Render produces the final fragment bytes. The first line gets targetDepth
// units of the profile's indentation; later non-blank lines keep their
// indentation relative to the first line; blank lines stay empty. INSIDE
// mode receives one extra level. Declaration and Block fragments inserted
// BEFORE or AFTER are followed by exactly one structural blank line.
func (f *Formatter) Render(raw string, profile indent.Profile, targetDepth int, kind Kind, mode resolver.Mode) Fragment {
	if mode == resolver.Inside {
		targetDepth++
	}

	lines := splitNormalized(raw)
	lines = trimEdgeBlanks(lines)
	if len(lines) == 0 {
		return Fragment{Kind: kind}
	}

	base := len(indent.AnalyzeLine(lines[0]).Raw)
	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		if i == 0 {
			out = append(out, profile.Indent(targetDepth)+strings.TrimLeft(line, " \t"))
			continue
		}
		relative := len(indent.AnalyzeLine(line).Raw) - base
		if relative < 0 {
			relative = 0
		}
		out = append(out, profile.Indent(targetDepth)+rebase(line, relative, profile))
	}

	if kind != Statement && mode != resolver.Inside {
		out = append(out, "")
	}

	return Fragment{
		Content:         strings.Join(out, "\n"),
		Kind:            kind,
		LineCount:       len(out),
		TrailingNewline: true,
	}
}

// rebase re-expresses a line's relative indentation in the profile's unit.
// The relative offset is measured in source characters; levels are inferred
// from the fragment's own unit width so two fragment levels stay two
// destination levels.
func rebase(line string, relative int, profile indent.Profile) string {
	body := strings.TrimLeft(line, " \t")
	if relative <= 0 {
		return body
	}
	li := indent.AnalyzeLine(line)
	unitWidth := li.Width
	if unitWidth <= 0 {
		unitWidth = indent.DefaultWidth
	}
	levels := relative / unitWidth
	if levels == 0 {
		levels = 1
	}
	return profile.Indent(levels) + body
}

func splitNormalized(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(raw, "\n")
}

func trimEdgeBlanks(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

func nonBlank(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

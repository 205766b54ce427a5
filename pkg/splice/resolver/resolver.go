// Package resolver turns a located match into a concrete insertion
// position: the line, column, and indentation depth at which new content
// should land for BEFORE, AFTER, and INSIDE insertion.
package resolver

import (
	"strings"

	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/locator"
)

// Mode selects where content lands relative to its anchor.
type Mode string

const (
	Before Mode = "before"
	After  Mode = "after"
	Inside Mode = "inside"
)

// SafetyThreshold is the maximum indentation delta, in units, between an
// insertion and its surrounding context before the position is flagged
// unsafe.
const SafetyThreshold = 8

// ContextWindow caps how many preceding lines feed the indentation
// suggestion. The original tool scanned about this much to associate a
// line with its enclosing declaration; larger constructs can in principle
// slip past it, which is accepted.
const ContextWindow = 20

// Position is the resolved insertion point.
type Position struct {
	// Line is the zero-based index the fragment's first line will occupy.
	Line        int               `json:"line"`
	Column      int               `json:"column"`
	Mode        Mode              `json:"mode"`
	IndentDepth int               `json:"indent_depth"`
	Context     map[string]string `json:"context,omitempty"`
	IsSafe      bool              `json:"is_safe"`
}

// Resolver computes insertion positions against one dialect.
type Resolver struct {
	Dialect *dialect.Dialect
}

func New(d *dialect.Dialect) *Resolver {
	if d == nil {
		d = dialect.Generic()
	}
	return &Resolver{Dialect: d}
}

// Resolve computes the insertion position for a match. lines is the full
// target split into lines; fragmentHint is the fragment's first non-blank
// line and may be empty.
func (r *Resolver) Resolve(match locator.MatchSpan, mode Mode, lines []string, fragmentHint string) Position {
	sg := indent.NewSuggester(r.Dialect, lines)

	var pos Position
	pos.Mode = mode
	pos.Context = r.contextFor(match, lines)

	switch mode {
	case Before:
		pos.Line = match.StartLine
		preceding := window(lines, match.StartLine-ContextWindow, match.StartLine)
		pos.IndentDepth = sg.SuggestDepth(preceding, fragmentHint)
	case Inside:
		// Anchored to a block opener: land on the line after the match and
		// one level deeper than the opener, no matter what follows. This
		// holds even when the block body is still empty.
		pos.Line = match.EndLine + 1
		openerDepth := 0
		if match.StartLine >= 0 && match.StartLine < len(lines) {
			openerDepth = indent.AnalyzeLine(lines[match.StartLine]).Depth
		}
		pos.IndentDepth = openerDepth + 1
	default: // After
		pos.Line = match.EndLine + 1
		// Include the match's own line so an opener anchor pushes the
		// suggestion into the body it just opened.
		through := window(lines, match.EndLine+1-ContextWindow, match.EndLine+1)
		pos.IndentDepth = sg.SuggestDepth(through, fragmentHint)
	}

	pos.Column = len(sg.Profile.Indent(pos.IndentDepth))
	pos.IsSafe = r.withinSanity(pos, lines)
	return pos
}

// SelectMatch picks the match to resolve. With a target depth it keeps only
// matches whose first line sits at that indentation depth; without one it
// is simply the first match at any depth.
func (r *Resolver) SelectMatch(matches []locator.MatchSpan, lines []string, targetDepth *int) (locator.MatchSpan, bool) {
	if targetDepth == nil {
		return locator.First(matches)
	}
	for _, m := range matches {
		if m.StartLine < 0 || m.StartLine >= len(lines) {
			continue
		}
		if indent.AnalyzeLine(lines[m.StartLine]).Depth == *targetDepth {
			return m, true
		}
	}
	return locator.MatchSpan{}, false
}

// FilterByDepth returns the matches whose first line sits at depth.
func (r *Resolver) FilterByDepth(matches []locator.MatchSpan, lines []string, depth int) []locator.MatchSpan {
	var out []locator.MatchSpan
	for _, m := range matches {
		if m.StartLine >= 0 && m.StartLine < len(lines) &&
			indent.AnalyzeLine(lines[m.StartLine]).Depth == depth {
			out = append(out, m)
		}
	}
	return out
}

func (r *Resolver) contextFor(match locator.MatchSpan, lines []string) map[string]string {
	ctx := make(map[string]string)
	if match.StartLine >= 0 && match.StartLine < len(lines) {
		ctx["anchor_line"] = lines[match.StartLine]
	}
	if match.StartLine-1 >= 0 && match.StartLine-1 < len(lines) {
		ctx["previous_line"] = lines[match.StartLine-1]
	}
	if match.EndLine+1 < len(lines) && match.EndLine+1 >= 0 {
		ctx["next_line"] = lines[match.EndLine+1]
	}
	ctx["matched_text"] = match.Text
	return ctx
}

// withinSanity flags positions whose indentation jumps implausibly far from
// the enclosing line, or that fall outside the file.
func (r *Resolver) withinSanity(pos Position, lines []string) bool {
	if pos.Line < 0 || pos.Line > len(lines) {
		return false
	}
	neighborDepth := 0
	for i := pos.Line - 1; i >= 0 && i >= pos.Line-ContextWindow; i-- {
		if i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			neighborDepth = indent.AnalyzeLine(lines[i]).Depth
			break
		}
	}
	delta := pos.IndentDepth - neighborDepth
	if delta < 0 {
		delta = -delta
	}
	return delta <= SafetyThreshold
}

func window(lines []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(lines) {
		to = len(lines)
	}
	if from >= to {
		return nil
	}
	return lines[from:to]
}

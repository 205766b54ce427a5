package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codeweft/weft/pkg/splice/executor"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/locator"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// RenderMatches formats located spans for terminal output. Line and column
// numbers are shown one-based.
func RenderMatches(path string, matches []locator.MatchSpan) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d match(es) in %s", len(matches), path)))
	b.WriteString("\n")
	for i, m := range matches {
		loc := fmt.Sprintf("%d:%d", m.StartLine+1, m.StartCol+1)
		if m.EndLine != m.StartLine {
			loc += fmt.Sprintf(" .. %d:%d", m.EndLine+1, m.EndCol+1)
		}
		preview := m.Text
		if idx := strings.IndexByte(preview, '\n'); idx >= 0 {
			preview = preview[:idx] + " …"
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			lineStyle.Render(fmt.Sprintf("[%d]", i+1)),
			matchStyle.Render(loc),
			preview)
	}
	return b.String()
}

// RenderProfile formats an indentation profile.
func RenderProfile(path string, p indent.Profile) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Indentation profile: " + path))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  unit:        %s\n", p.Unit)
	fmt.Fprintf(&b, "  width:       %d\n", p.DominantWidth)
	fmt.Fprintf(&b, "  sampled:     %d lines\n", p.LinesSampled)
	fmt.Fprintf(&b, "  consistency: %.0f%%\n", p.Consistency*100)
	if p.Consistency < 0.8 && p.LinesSampled > 0 {
		b.WriteString(warnStyle.Render("  note: file indentation is inconsistent"))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderResult formats a committed insertion.
func RenderResult(r *executor.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Inserted %d fragment(s) into %s", r.Insertions, r.Path)))
	b.WriteString("\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "  at line %s\n", matchStyle.Render(fmt.Sprintf("%d", line+1)))
	}
	fmt.Fprintf(&b, "  %s\n", lineStyle.Render(fmt.Sprintf("%d -> %d bytes", r.OriginalBytes, r.NewBytes)))
	return b.String()
}

// RenderSuggestions formats near-miss candidates after a failed locate.
func RenderSuggestions(suggestions []locator.Suggestion) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(warnStyle.Render("Did you mean:"))
	b.WriteString("\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "  line %d (%.0f%%): %s\n", s.Line+1, s.Similarity*100, s.Text)
	}
	return b.String()
}

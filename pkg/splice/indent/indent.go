// Package indent infers the indentation style of source text: which
// character a file indents with, how wide one level is, and how deep a
// given line sits. Nothing here returns an error; unanalyzable input
// degrades to Unknown and depth zero so insertion can always proceed.
package indent

import "strings"

// Unit is the indentation character class of a line or file.
type Unit string

const (
	UnitUnknown Unit = "unknown"
	UnitSpaces  Unit = "spaces"
	UnitTabs    Unit = "tabs"
	UnitMixed   Unit = "mixed"
)

// Widths tried, in preference order, when inferring the unit size of a
// space-indented line. Four first: it is the most common convention.
var candidateWidths = []int{4, 2, 8}

// DefaultWidth is assumed when a file gives no usable signal.
const DefaultWidth = 4

// LineIndentation is the per-line analysis result.
type LineIndentation struct {
	Unit  Unit
	Width int
	Depth int
	Raw   string
}

// Profile summarizes indentation across a window of lines.
type Profile struct {
	Unit          Unit
	DominantWidth int
	LinesSampled  int
	// Consistency is the fraction of non-blank analyzed lines whose unit
	// agrees with Unit.
	Consistency float64
}

// String renders one indentation level of the profile.
func (p Profile) String() string {
	if p.Unit == UnitTabs {
		return "\t"
	}
	w := p.DominantWidth
	if w <= 0 {
		w = DefaultWidth
	}
	return strings.Repeat(" ", w)
}

// Indent renders depth levels of the profile's indentation.
func (p Profile) Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(p.String(), depth)
}

// AnalyzeLine inspects one line's leading whitespace.
func AnalyzeLine(line string) LineIndentation {
	raw := leadingWhitespace(line)
	if strings.TrimSpace(line) == "" {
		return LineIndentation{Unit: UnitUnknown, Raw: raw}
	}
	if raw == "" {
		return LineIndentation{Unit: UnitUnknown, Raw: ""}
	}

	spaces := strings.Count(raw, " ")
	tabs := strings.Count(raw, "\t")

	switch {
	case tabs > 0 && spaces > 0:
		// Mixed leading whitespace: depth from the total character count
		// is the best available guess.
		return LineIndentation{Unit: UnitMixed, Width: 1, Depth: len(raw), Raw: raw}
	case tabs > 0:
		return LineIndentation{Unit: UnitTabs, Width: 1, Depth: tabs, Raw: raw}
	default:
		width := detectSpaceWidth(spaces)
		return LineIndentation{Unit: UnitSpaces, Width: width, Depth: spaces / width, Raw: raw}
	}
}

// AnalyzeWindow aggregates per-line analysis into a Profile. Blank lines
// are sampled but carry no vote.
func AnalyzeWindow(lines []string) Profile {
	profile := Profile{Unit: UnitUnknown, DominantWidth: DefaultWidth, LinesSampled: len(lines)}

	var spaceLines, tabLines, mixedLines, analyzed int
	widthVotes := make(map[int]int)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		li := AnalyzeLine(line)
		if li.Raw == "" {
			continue
		}
		analyzed++
		switch li.Unit {
		case UnitSpaces:
			spaceLines++
			widthVotes[li.Width]++
		case UnitTabs:
			tabLines++
		case UnitMixed:
			mixedLines++
		}
	}

	if analyzed == 0 {
		return profile
	}

	agreeing := 0
	switch {
	case mixedLines > 0:
		profile.Unit = UnitMixed
		agreeing = mixedLines
	case spaceLines >= tabLines:
		profile.Unit = UnitSpaces
		agreeing = spaceLines
	default:
		profile.Unit = UnitTabs
		agreeing = tabLines
	}

	if w := dominantWidth(widthVotes); w > 0 {
		profile.DominantWidth = w
	}
	profile.Consistency = float64(agreeing) / float64(analyzed)
	return profile
}

// detectSpaceWidth finds the unit width of a space-indented line by testing
// the candidate widths for even divisibility. A count no candidate divides
// is treated as a single level of that full width.
func detectSpaceWidth(count int) int {
	if count <= 0 {
		return DefaultWidth
	}
	for _, w := range candidateWidths {
		if count%w == 0 {
			return w
		}
	}
	return count
}

func dominantWidth(votes map[int]int) int {
	best, bestCount := 0, 0
	for w, n := range votes {
		if n > bestCount || (n == bestCount && w < best) {
			best, bestCount = w, n
		}
	}
	return best
}

func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

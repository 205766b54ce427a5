package locator

import (
	"strings"

	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/indent"
)

// BlockKind selects which declaration shape opens a block.
type BlockKind string

const (
	BlockFunction    BlockKind = "function"
	BlockClass       BlockKind = "class"
	BlockConditional BlockKind = "conditional"
	BlockTry         BlockKind = "try"
	BlockAny         BlockKind = "any"
)

// BlockMatcher finds a declaration line plus its indented body. The body is
// every following line indented deeper than the opener; blank lines are
// skipped without terminating the block. The block ends at the first line
// whose indentation returns to the opener's level or shallower, or at EOF.
type BlockMatcher struct {
	Kind    BlockKind
	Dialect *dialect.Dialect
}

func NewBlock(kind BlockKind, d *dialect.Dialect) *BlockMatcher {
	if d == nil {
		d = dialect.Generic()
	}
	return &BlockMatcher{Kind: kind, Dialect: d}
}

func (m *BlockMatcher) Description() string {
	return "block " + string(m.Kind)
}

func (m *BlockMatcher) Locate(text string) ([]MatchSpan, error) {
	lines := SplitLines(text)

	var matches []MatchSpan
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || !m.opens(trimmed) {
			continue
		}
		end := m.consumeBody(lines, i)
		matches = append(matches, MatchSpan{
			StartLine: i,
			StartCol:  indentWidth(lines[i]),
			EndLine:   end,
			EndCol:    len(lines[end]),
			Text:      strings.Join(lines[i:end+1], "\n"),
		})
	}
	return matches, nil
}

// consumeBody returns the index of the block's last line given its opener.
func (m *BlockMatcher) consumeBody(lines []string, opener int) int {
	openerWidth := indentWidth(lines[opener])
	last := opener
	for j := opener + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "" {
			continue
		}
		if indentWidth(lines[j]) <= openerWidth {
			break
		}
		last = j
	}
	return last
}

func (m *BlockMatcher) opens(trimmed string) bool {
	keywords, ok := blockKeywords[m.Kind]
	if !ok {
		return m.Dialect.OpensBlock(trimmed)
	}
	for _, kw := range keywords {
		if trimmed == kw || (strings.HasPrefix(trimmed, kw) && boundaryAfter(trimmed, kw)) {
			return true
		}
	}
	return false
}

// Keyword shapes per block kind, spanning the dialects the tool recognizes.
// Kinds narrow the dialect's generic open rule to one declaration family.
var blockKeywords = map[BlockKind][]string{
	BlockFunction:    {"def", "async def", "func", "function", "fn", "sub"},
	BlockClass:       {"class", "interface", "enum", "module", "trait", "struct"},
	BlockConditional: {"if", "elif", "else if", "unless", "switch", "match"},
	BlockTry:         {"try", "begin"},
}

func boundaryAfter(trimmed, kw string) bool {
	rest := trimmed[len(kw):]
	if rest == "" {
		return true
	}
	b := rest[0]
	return !(b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9'))
}

// indentWidth measures leading whitespace with tabs weighted as one column
// each; it is used only for relative depth comparison, never rendering.
func indentWidth(line string) int {
	return len(indent.AnalyzeLine(line).Raw)
}

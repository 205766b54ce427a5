// Package splice is the public face of the insertion engine. Orchestration
// callers locate anchors, resolve positions, format fragments, and perform
// transactional insertions through the Engine; everything underneath lives
// in the subpackages and stays swappable.
package splice

import (
	"github.com/codeweft/weft/internal/logger"
	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/executor"
	"github.com/codeweft/weft/pkg/splice/formatter"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/locator"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

// Anchor is the search strategy that locates insertion points. The literal,
// regex, block, and marker anchors below cover the built-in shapes; any
// other Matcher (a parser-backed structural matcher, for one) plugs into
// the same seam.
type Anchor = locator.Matcher

// Literal anchors on a substring, found line by line.
func Literal(pattern string, caseSensitive bool) Anchor {
	return locator.NewLiteral(pattern, caseSensitive)
}

// Regex anchors on a regular expression with optional inline flags.
func Regex(pattern, flags string) Anchor {
	return locator.NewRegex(pattern, flags)
}

// Block anchors on an indentation-defined block of the given kind.
func Block(kind locator.BlockKind, d *dialect.Dialect) Anchor {
	return locator.NewBlock(kind, d)
}

// Markers anchors on the span between two literal markers.
func Markers(start, end string, includeMarkers bool) Anchor {
	return locator.NewMarkers(start, end, includeMarkers)
}

// Engine bundles the components behind the public contract. One Engine may
// serve many files; each Insert owns its target for the duration of the
// call, and inserts into distinct files can run in parallel.
type Engine struct {
	exec    *executor.Executor
	dialect *dialect.Dialect
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		exec:    executor.New(log),
		dialect: dialect.Generic(),
	}
}

// WithDialect overrides the generic keyword tables for text-level
// operations. File-level Insert detects the dialect per target on its own.
func (e *Engine) WithDialect(d *dialect.Dialect) *Engine {
	if d != nil {
		e.dialect = d
	}
	return e
}

// Locate returns every occurrence of the anchor in document order.
func (e *Engine) Locate(text string, anchor Anchor) ([]locator.MatchSpan, error) {
	return anchor.Locate(text)
}

// ResolvePosition computes where content would land for a match.
func (e *Engine) ResolvePosition(match locator.MatchSpan, mode resolver.Mode, lines []string) resolver.Position {
	return resolver.New(e.dialect).Resolve(match, mode, lines, "")
}

// FormatFragment renders raw content at the given depth using the default
// four-space profile; Insert uses the target file's own profile instead.
func (e *Engine) FormatFragment(raw string, depth int, mode resolver.Mode) formatter.Fragment {
	f := formatter.New(e.dialect)
	profile := indent.Profile{Unit: indent.UnitSpaces, DominantWidth: indent.DefaultWidth}
	return f.Render(raw, profile, depth, f.Classify(raw), mode)
}

// Insert performs the full pipeline against a file on disk.
func (e *Engine) Insert(path string, anchor Anchor, fragment string, mode resolver.Mode, opts executor.Options) (*executor.Result, error) {
	return e.exec.Insert(path, anchor, fragment, mode, opts)
}

// Rollback restores a previously inserted-into file to its pre-insertion
// bytes. False means no record was held for the path.
func (e *Engine) Rollback(path string) bool {
	return e.exec.Rollback(path)
}

// Record exposes the rollback record for inspection.
func (e *Engine) Record(path string) (*executor.InsertionRecord, bool) {
	return e.exec.Record(path)
}

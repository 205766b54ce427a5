// Package executor orchestrates one insertion end to end: locate the
// anchor, resolve the position, format the fragment, splice and write. The
// pre-mutation content is captured before any byte reaches the disk, so
// rollback is available from the moment a write begins.
package executor

import (
	"os"
	"strings"
	"sync"

	"github.com/codeweft/weft/internal/logger"
	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/formatter"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/locator"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

// State names the stage an insertion has reached.
type State string

const (
	StateIdle       State = "idle"
	StateLocated    State = "located"
	StateResolved   State = "resolved"
	StateFormatted  State = "formatted"
	StateWritten    State = "written"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
	StateFailed     State = "failed"
)

// Options controls one Insert call.
type Options struct {
	// AllMatches inserts at every occurrence instead of only the first.
	AllMatches bool
	// TargetDepth restricts matches to anchors at this indentation depth.
	TargetDepth *int
	// Force accepts positions the safety check rejected.
	Force bool
	// FullScan disables head/tail sampling on large files.
	FullScan bool
	// PreserveIndentation splices the fragment with its own indentation
	// instead of re-basing it onto the surrounding style.
	PreserveIndentation bool
	// DryRun runs the whole pipeline but skips the final write.
	DryRun bool
}

// Result summarizes a committed insertion.
type Result struct {
	Path          string `json:"path"`
	State         State  `json:"state"`
	Insertions    int    `json:"insertions"`
	OriginalBytes int    `json:"original_bytes"`
	NewBytes      int    `json:"new_bytes"`
	// Lines are the zero-based lines, in the new content, where each
	// inserted fragment begins.
	Lines []int `json:"lines"`
}

// Executor owns the rollback record table. Instances are independent;
// concurrent inserts into distinct files are safe, concurrent inserts into
// the same file are the caller's to serialize.
type Executor struct {
	mu      sync.Mutex
	records map[string]*InsertionRecord
	log     logger.Logger
}

func New(log logger.Logger) *Executor {
	if log == nil {
		log = logger.NewStdout()
	}
	return &Executor{records: make(map[string]*InsertionRecord), log: log}
}

// Insert locates anchor in the target file, formats fragment for the spot,
// and rewrites the file. Failures before the write stage leave the
// filesystem untouched.
func (e *Executor) Insert(path string, anchor locator.Matcher, fragment string, mode resolver.Mode, opts Options) (*Result, error) {
	fail := func(stage State, reason string, err error) (*Result, error) {
		return nil, &InsertError{
			Path: path, Anchor: anchor.Description(), Mode: mode,
			Stage: stage, Reason: reason, Err: err,
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fail(StateIdle, "cannot read target", err)
	}
	text, err := decodeText(path, raw)
	if err != nil {
		return fail(StateIdle, "cannot decode target", err)
	}

	d := dialect.DetectFile(path, raw)
	lines := locator.SplitLines(text)
	eol := "\n"
	if strings.Contains(text, "\r\n") {
		eol = "\r\n"
	}

	// Idle -> Located
	matches, err := resolver.SampledLocate(anchor, text, opts.FullScan)
	if err != nil {
		return fail(StateLocated, "anchor cannot be searched", err)
	}
	if len(matches) == 0 {
		insErr := &InsertError{
			Path: path, Anchor: anchor.Description(), Mode: mode,
			Stage: StateLocated, Reason: "anchor matched nothing", Err: ErrPatternNotFound,
		}
		if lit, ok := anchor.(*locator.LiteralMatcher); ok {
			insErr.Suggestions = locator.SuggestNearMatches(text, lit.Pattern)
		}
		return nil, insErr
	}

	res := resolver.New(d)
	if opts.TargetDepth != nil {
		matches = res.FilterByDepth(matches, lines, *opts.TargetDepth)
		if len(matches) == 0 {
			return fail(StateLocated, "no match at the requested depth", ErrPatternNotFound)
		}
	}
	if !opts.AllMatches {
		matches = matches[:1]
	}

	// Located -> Resolved -> Formatted, per match.
	fmtr := formatter.New(d)
	profile := indent.AnalyzeWindow(lines)
	hint := firstNonBlank(fragment)
	kind := fmtr.Classify(fragment)

	type planned struct {
		pos  resolver.Position
		frag formatter.Fragment
	}
	plans := make([]planned, 0, len(matches))
	for _, m := range matches {
		pos := res.Resolve(m, mode, lines, hint)
		if err := res.ValidateSafety(pos, fragment, lines); err != nil && !opts.Force {
			return fail(StateResolved, "position failed the safety check", err)
		}
		frag := e.render(fmtr, fragment, profile, pos, kind, mode, opts)
		plans = append(plans, planned{pos: pos, frag: frag})
	}

	// Capture the record before touching the file so rollback is always
	// possible once the write begins.
	rec := &InsertionRecord{
		Path:            path,
		OriginalContent: raw,
		Pattern:         anchor.Description(),
		Fragment:        fragment,
	}

	// Formatted -> Written. Ascending order keeps the offset arithmetic
	// monotonic: each earlier insertion shifts the later ones down by its
	// own line count.
	offset := 0
	var insertedAt []int
	for _, p := range plans {
		at := p.pos.Line + offset
		if at > len(lines) {
			at = len(lines)
		}
		fragLines := strings.Split(p.frag.Content, "\n")
		lines = spliceLines(lines, at, fragLines)
		insertedAt = append(insertedAt, at)
		offset += len(fragLines)
	}
	rec.Positions = insertedAt

	result := &Result{
		Path:          path,
		Insertions:    len(plans),
		OriginalBytes: len(raw),
		Lines:         insertedAt,
	}

	newContent := strings.Join(lines, eol)
	result.NewBytes = len(newContent)

	if opts.DryRun {
		result.State = StateFormatted
		return result, nil
	}

	e.store(rec)
	mode0 := os.FileMode(0644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode0 = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(newContent), mode0); err != nil {
		return fail(StateWritten, "write did not land", &WriteError{Path: path, Err: err})
	}

	e.log.Logf("inserted %d fragment(s) into %s (%d -> %d bytes)\n",
		result.Insertions, path, result.OriginalBytes, result.NewBytes)
	result.State = StateCommitted
	return result, nil
}

// Rollback restores the file's pre-insertion bytes verbatim and discards
// the record. A path with no record is a no-op returning false, not an
// error.
func (e *Executor) Rollback(path string) bool {
	e.mu.Lock()
	rec, ok := e.records[path]
	e.mu.Unlock()
	if !ok {
		return false
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, rec.OriginalContent, mode); err != nil {
		e.log.Logf("rollback of %s failed: %v\n", path, err)
		return false
	}
	e.Drop(path)
	return true
}

func (e *Executor) render(fmtr *formatter.Formatter, fragment string, profile indent.Profile, pos resolver.Position, kind formatter.Kind, mode resolver.Mode, opts Options) formatter.Fragment {
	if opts.PreserveIndentation {
		content := strings.TrimRight(strings.ReplaceAll(fragment, "\r\n", "\n"), "\n")
		return formatter.Fragment{
			Content:         content,
			Kind:            kind,
			LineCount:       strings.Count(content, "\n") + 1,
			TrailingNewline: true,
		}
	}
	// The resolver already accounted for INSIDE's extra level and Render
	// adds it again; hand Render the opener's depth.
	depth := pos.IndentDepth
	if mode == resolver.Inside && depth > 0 {
		depth--
	}
	return fmtr.Render(fragment, profile, depth, kind, mode)
}

func spliceLines(lines []string, at int, insert []string) []string {
	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)
	return out
}

func firstNonBlank(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

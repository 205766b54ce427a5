package resolver

import (
	"testing"

	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/locator"
)

func mustLocate(t *testing.T, m locator.Matcher, text string) []locator.MatchSpan {
	t.Helper()
	matches, err := m.Locate(text)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("anchor not found in fixture")
	}
	return matches
}

const pyFixture = `def handler(req):
    check(req)
    dispatch(req)

def other():
    pass
`

func TestResolve_Before(t *testing.T) {
	lines := locator.SplitLines(pyFixture)
	match := mustLocate(t, locator.NewLiteral("dispatch(req)", true), pyFixture)[0]

	r := New(dialect.Python())
	pos := r.Resolve(match, Before, lines, "")
	if pos.Line != 2 {
		t.Errorf("line = %d, want 2", pos.Line)
	}
	if pos.IndentDepth != 1 {
		t.Errorf("depth = %d, want 1", pos.IndentDepth)
	}
	if !pos.IsSafe {
		t.Error("expected safe position")
	}
}

func TestResolve_After(t *testing.T) {
	lines := locator.SplitLines(pyFixture)
	match := mustLocate(t, locator.NewLiteral("check(req)", true), pyFixture)[0]

	r := New(dialect.Python())
	pos := r.Resolve(match, After, lines, "")
	if pos.Line != 2 {
		t.Errorf("line = %d, want 2", pos.Line)
	}
	if pos.IndentDepth != 1 {
		t.Errorf("depth = %d, want 1", pos.IndentDepth)
	}
}

func TestResolve_AfterBlockOpenerEntersBody(t *testing.T) {
	lines := locator.SplitLines(pyFixture)
	match := mustLocate(t, locator.NewLiteral("def handler(req):", true), pyFixture)[0]

	r := New(dialect.Python())
	pos := r.Resolve(match, After, lines, "")
	if pos.Line != 1 {
		t.Errorf("line = %d, want 1", pos.Line)
	}
	// The anchor opened a block, so new content belongs in its body.
	if pos.IndentDepth != 1 {
		t.Errorf("depth = %d, want 1", pos.IndentDepth)
	}
}

func TestResolve_InsideEmptyBlock(t *testing.T) {
	text := "def empty():\nrun()\n"
	lines := locator.SplitLines(text)
	match := mustLocate(t, locator.NewLiteral("def empty():", true), text)[0]

	r := New(dialect.Python())
	pos := r.Resolve(match, Inside, lines, "")
	if pos.Line != match.EndLine+1 {
		t.Errorf("line = %d, want %d", pos.Line, match.EndLine+1)
	}
	if pos.IndentDepth != 1 {
		t.Errorf("depth = %d, want opener depth + 1 = 1", pos.IndentDepth)
	}
}

func TestResolve_InsideNestedOpener(t *testing.T) {
	text := "class A:\n    def m(self):\n        pass\n"
	lines := locator.SplitLines(text)
	match := mustLocate(t, locator.NewLiteral("def m(self):", true), text)[0]

	r := New(dialect.Python())
	pos := r.Resolve(match, Inside, lines, "")
	if pos.IndentDepth != 2 {
		t.Errorf("depth = %d, want 2", pos.IndentDepth)
	}
}

func TestResolve_OutOfRangeIsUnsafe(t *testing.T) {
	lines := locator.SplitLines("x = 1")
	r := New(dialect.Python())
	pos := r.Resolve(locator.MatchSpan{StartLine: 40, EndLine: 40}, After, lines, "")
	if pos.IsSafe {
		t.Error("expected unsafe position for line outside the file")
	}
}

func TestSelectMatch_TargetDepth(t *testing.T) {
	text := `def top():
    pass
    def nested():
        pass
`
	lines := locator.SplitLines(text)
	matches := mustLocate(t, locator.NewRegex(`def \w+\(\):`, ""), text)

	r := New(dialect.Python())

	picked, ok := r.SelectMatch(matches, lines, nil)
	if !ok || picked.StartLine != 0 {
		t.Errorf("default selection = %+v, want first match", picked)
	}

	depth := 1
	picked, ok = r.SelectMatch(matches, lines, &depth)
	if !ok || picked.StartLine != 2 {
		t.Errorf("depth-1 selection = %+v, want nested def", picked)
	}

	missing := 7
	if _, ok := r.SelectMatch(matches, lines, &missing); ok {
		t.Error("expected no match at depth 7")
	}
}

func TestValidateSafety_RejectsUnindentedAfterOpener(t *testing.T) {
	text := "if cond:\nx = 1\n"
	lines := locator.SplitLines(text)
	r := New(dialect.Python())

	pos := Position{Line: 1, Mode: After, IndentDepth: 0, IsSafe: true}
	if err := r.ValidateSafety(pos, "do_thing()", lines); err == nil {
		t.Error("expected rejection: fragment would sit outside the opened block")
	}

	pos.IndentDepth = 1
	if err := r.ValidateSafety(pos, "do_thing()", lines); err != nil {
		t.Errorf("unexpected rejection: %v", err)
	}
}

func TestValidateSafety_ThresholdDelta(t *testing.T) {
	lines := locator.SplitLines("x = 1\ny = 2\n")
	r := New(dialect.Python())
	pos := Position{Line: 1, Mode: After, IndentDepth: SafetyThreshold + 1}
	pos.IsSafe = r.withinSanity(pos, lines)
	if pos.IsSafe {
		t.Error("expected delta beyond the threshold to be unsafe")
	}
	if err := r.ValidateSafety(pos, "z = 3", lines); err == nil {
		t.Error("expected ValidateSafety to reject the unsafe position")
	}
}

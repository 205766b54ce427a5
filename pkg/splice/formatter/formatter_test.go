package formatter

import (
	"strings"
	"testing"

	"github.com/codeweft/weft/pkg/splice/dialect"
	"github.com/codeweft/weft/pkg/splice/indent"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

func spacesProfile(width int) indent.Profile {
	return indent.Profile{Unit: indent.UnitSpaces, DominantWidth: width, Consistency: 1}
}

func TestClassify(t *testing.T) {
	f := New(dialect.Python())
	tests := []struct {
		name     string
		fragment string
		want     Kind
	}{
		{"single statement", "x = compute()", Statement},
		{"declaration", "def helper():\n    return 1", Declaration},
		{"class declaration", "class Thing:\n    pass", Declaration},
		{"multiline with nested block", "for i in items:\n    use(i)", Block},
		{"plain multiline", "a = 1\nb = 2", Statement},
		{"blank fragment", "   \n", Statement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Classify(tt.fragment); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestRender_Statement(t *testing.T) {
	f := New(dialect.Python())
	frag := f.Render("new_line()", spacesProfile(4), 1, Statement, resolver.After)
	if frag.Content != "    new_line()" {
		t.Errorf("content = %q", frag.Content)
	}
	if frag.LineCount != 1 {
		t.Errorf("line count = %d, want 1 (no boundary blank line)", frag.LineCount)
	}
}

func TestRender_RelativeIndentationSurvives(t *testing.T) {
	f := New(dialect.Python())
	raw := "def helper():\n    if ok:\n        deep()\n    done()"
	frag := f.Render(raw, spacesProfile(4), 1, Declaration, resolver.After)

	lines := strings.Split(frag.Content, "\n")
	want := []string{
		"    def helper():",
		"        if ok:",
		"            deep()",
		"        done()",
		"",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), frag.Content)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRender_DeclarationBoundaryBlankLine(t *testing.T) {
	f := New(dialect.Python())
	frag := f.Render("def x():\n    pass", spacesProfile(4), 0, Declaration, resolver.Before)
	if !strings.HasSuffix(frag.Content, "\n") {
		t.Errorf("declaration should end with a structural blank line: %q", frag.Content)
	}
	if frag.LineCount != 3 {
		t.Errorf("line count = %d, want 3 (two lines plus boundary)", frag.LineCount)
	}
}

func TestRender_BlankLinesNeverIndented(t *testing.T) {
	f := New(dialect.Python())
	frag := f.Render("a = 1\n\nb = 2", spacesProfile(4), 2, Statement, resolver.After)
	lines := strings.Split(frag.Content, "\n")
	if lines[1] != "" {
		t.Errorf("interior blank line = %q, want empty", lines[1])
	}
}

func TestRender_InsideAddsOneLevel(t *testing.T) {
	f := New(dialect.Python())
	frag := f.Render("ping()", spacesProfile(4), 1, Statement, resolver.Inside)
	if frag.Content != "        ping()" {
		t.Errorf("content = %q, want two levels", frag.Content)
	}
}

func TestRender_TabProfile(t *testing.T) {
	f := New(dialect.Go())
	frag := f.Render("x := 1", indent.Profile{Unit: indent.UnitTabs, DominantWidth: 1}, 2, Statement, resolver.After)
	if frag.Content != "\t\tx := 1" {
		t.Errorf("content = %q, want tab indentation", frag.Content)
	}
}

func TestRender_NormalizesLineEndingsAndTrailingSpace(t *testing.T) {
	f := New(dialect.Python())
	frag := f.Render("a = 1  \r\nb = 2\t\r\n", spacesProfile(4), 0, Statement, resolver.After)
	if frag.Content != "a = 1\nb = 2" {
		t.Errorf("content = %q", frag.Content)
	}
	if !frag.TrailingNewline {
		t.Error("expected trailing newline flag")
	}
}

func TestValidate_SoftNestingCheck(t *testing.T) {
	f := New(dialect.Python())
	if err := f.Validate("if x:\n    go()"); err != nil {
		t.Errorf("unexpected rejection: %v", err)
	}
	if err := f.Validate("if x:\ngo()"); err == nil {
		t.Error("expected rejection: statement after opener at same depth")
	}
	// Closing brackets may legitimately return to the opener's level.
	if err := f.Validate("call(\n)"); err != nil {
		t.Errorf("unexpected rejection for closing bracket: %v", err)
	}
}

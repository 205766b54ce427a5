package locator

import (
	"errors"
	"testing"
)

func TestRegex_CaptureGroups(t *testing.T) {
	m := NewRegex(`def (\w+)\(`, "")
	matches, err := m.Locate("def alpha():\n    pass\ndef beta():\n    pass\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Groups[0] != "alpha" || matches[1].Groups[0] != "beta" {
		t.Errorf("groups = %v, %v", matches[0].Groups, matches[1].Groups)
	}
	if matches[1].StartLine != 2 {
		t.Errorf("second match line = %d, want 2", matches[1].StartLine)
	}
}

func TestRegex_MultilineSpan(t *testing.T) {
	m := NewRegex(`(?s)begin.*end`, "")
	matches, err := m.Locate("x\nbegin\nmiddle\nend\ny\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	got := matches[0]
	if got.StartLine != 1 || got.EndLine != 3 {
		t.Errorf("span lines = %d..%d, want 1..3", got.StartLine, got.EndLine)
	}
	if got.LineCount() != 3 {
		t.Errorf("line count = %d, want 3", got.LineCount())
	}
}

func TestRegex_InlineFlags(t *testing.T) {
	m := NewRegex(`RUN`, "i")
	matches, err := m.Locate("    run()\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("got %d matches, want 1", len(matches))
	}
}

func TestRegex_InvalidPattern(t *testing.T) {
	m := NewRegex(`def (`, "")
	_, err := m.Locate("anything")
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PatternError", err)
	}
}

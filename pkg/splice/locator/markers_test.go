package locator

import "testing"

const markedText = `setup
# BEGIN generated
alpha
beta
# END generated
teardown
# BEGIN generated
gamma
# END generated
`

func TestMarkers_InteriorSpan(t *testing.T) {
	m := NewMarkers("# BEGIN generated", "# END generated", false)
	matches, err := m.Locate(markedText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d spans, want 2", len(matches))
	}
	if matches[0].Text != "\nalpha\nbeta\n" {
		t.Errorf("interior = %q", matches[0].Text)
	}
}

func TestMarkers_IncludeMarkers(t *testing.T) {
	m := NewMarkers("# BEGIN generated", "# END generated", true)
	matches, err := m.Locate(markedText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches[0].StartLine != 1 || matches[0].EndLine != 4 {
		t.Errorf("span = lines %d..%d, want 1..4", matches[0].StartLine, matches[0].EndLine)
	}
	if got := matches[0].LineCount(); got != 4 {
		t.Errorf("line count = %d, want 4", got)
	}
}

func TestMarkers_NonGreedy(t *testing.T) {
	m := NewMarkers("<", ">", false)
	matches, err := m.Locate("<a> <b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 || matches[0].Text != "a" || matches[1].Text != "b" {
		t.Errorf("spans = %+v, want a then b", matches)
	}
}

func TestMarkers_UnterminatedPair(t *testing.T) {
	m := NewMarkers("BEGIN", "END", false)
	matches, err := m.Locate("BEGIN\nno end here\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d spans, want 0 for unterminated pair", len(matches))
	}
}

func TestMarkers_EmptyMarkerIsError(t *testing.T) {
	m := NewMarkers("", "END", false)
	if _, err := m.Locate("text"); err == nil {
		t.Error("expected PatternError for empty marker")
	}
}

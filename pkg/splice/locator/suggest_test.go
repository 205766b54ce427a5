package locator

import "testing"

func TestSuggestNearMatches(t *testing.T) {
	text := "def handle_request(req):\n    return process(req)\n"
	got := SuggestNearMatches(text, "def handle_requests(req):")
	if len(got) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if got[0].Line != 0 {
		t.Errorf("best suggestion line = %d, want 0", got[0].Line)
	}
	if got[0].Similarity < suggestionFloor || got[0].Similarity >= 1.0 {
		t.Errorf("similarity = %f, want within [%f, 1)", got[0].Similarity, suggestionFloor)
	}
}

func TestSuggestNearMatches_NothingClose(t *testing.T) {
	if got := SuggestNearMatches("alpha\nbeta\n", "completely unrelated pattern"); len(got) != 0 {
		t.Errorf("suggestions = %+v, want none", got)
	}
}

func TestSuggestNearMatches_CapsResults(t *testing.T) {
	text := "value_1\nvalue_2\nvalue_3\nvalue_4\nvalue_5\n"
	got := SuggestNearMatches(text, "value_9")
	if len(got) > maxSuggestions {
		t.Errorf("got %d suggestions, cap is %d", len(got), maxSuggestions)
	}
}

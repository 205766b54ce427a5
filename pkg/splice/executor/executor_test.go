package executor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeweft/weft/internal/logger"
	"github.com/codeweft/weft/pkg/splice/locator"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInsert_StatementAfterBodyLine(t *testing.T) {
	content := "def handler():\n    body_line_1()\n    body_line_2()\n"
	path := writeTemp(t, "app.py", content)

	exec := New(logger.Quiet{})
	result, err := exec.Insert(path, locator.NewLiteral("body_line_2()", true), "new_line()", resolver.After, Options{})
	require.NoError(t, err)

	assert.Equal(t, StateCommitted, result.State)
	assert.Equal(t, 1, result.Insertions)
	assert.Equal(t, len(content), result.OriginalBytes)

	want := "def handler():\n    body_line_1()\n    body_line_2()\n    new_line()\n"
	assert.Equal(t, want, readBack(t, path), "statement lands at depth 1 with no blank line")
}

func TestInsert_InsideEmptyBlock(t *testing.T) {
	content := "def empty():\nrun()\n"
	path := writeTemp(t, "app.py", content)

	exec := New(logger.Quiet{})
	_, err := exec.Insert(path, locator.NewLiteral("def empty():", true), "pass", resolver.Inside, Options{})
	require.NoError(t, err)

	assert.Equal(t, "def empty():\n    pass\nrun()\n", readBack(t, path))
}

func TestInsert_RollbackRoundTrip(t *testing.T) {
	content := "def handler():\n    work()\n"
	path := writeTemp(t, "app.py", content)

	exec := New(logger.Quiet{})
	_, err := exec.Insert(path, locator.NewLiteral("work()", true), "extra()", resolver.After, Options{})
	require.NoError(t, err)
	require.NotEqual(t, content, readBack(t, path))

	require.True(t, exec.Rollback(path))
	assert.Equal(t, content, readBack(t, path), "rollback must restore bytes exactly")

	_, held := exec.Record(path)
	assert.False(t, held, "record is discarded after a successful rollback")
}

func TestRollback_NoRecord(t *testing.T) {
	exec := New(logger.Quiet{})
	assert.False(t, exec.Rollback("/nowhere/missing.py"))
}

func TestInsert_AllMatchesOffsets(t *testing.T) {
	content := "hook()\na = 1\nhook()\nb = 2\nhook()\n"
	path := writeTemp(t, "script.py", content)

	exec := New(logger.Quiet{})
	result, err := exec.Insert(path, locator.NewLiteral("hook()", true), "traced()", resolver.After, Options{AllMatches: true})
	require.NoError(t, err)
	require.Equal(t, 3, result.Insertions)

	got := readBack(t, path)
	originalLines := strings.Count(content, "\n")
	gotLines := strings.Count(got, "\n")
	assert.Equal(t, originalLines+3, gotLines, "line count grows by matches x fragment lines")

	want := "hook()\ntraced()\na = 1\nhook()\ntraced()\nb = 2\nhook()\ntraced()\n"
	assert.Equal(t, want, got)
}

func TestInsert_PatternNotFound(t *testing.T) {
	content := "def handle_request(req):\n    pass\n"
	path := writeTemp(t, "app.py", content)

	exec := New(logger.Quiet{})
	_, err := exec.Insert(path, locator.NewLiteral("def handle_requests(req):", true), "x()", resolver.After, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPatternNotFound))

	var insErr *InsertError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, StateLocated, insErr.Stage)
	assert.NotEmpty(t, insErr.Suggestions, "near-miss candidates accompany the failure")

	assert.Equal(t, content, readBack(t, path), "located-stage failure never mutates the file")
}

func TestInsert_InvalidRegexIsPatternError(t *testing.T) {
	path := writeTemp(t, "app.py", "x = 1\n")

	exec := New(logger.Quiet{})
	_, err := exec.Insert(path, locator.NewRegex("(", ""), "y()", resolver.After, Options{})
	require.Error(t, err)

	var perr *locator.PatternError
	assert.ErrorAs(t, err, &perr)
}

func TestInsert_TargetDepthFilter(t *testing.T) {
	content := "def top():\n    pass\n    def nested():\n        pass\n"
	path := writeTemp(t, "app.py", content)

	depth := 1
	exec := New(logger.Quiet{})
	result, err := exec.Insert(path, locator.NewRegex(`def \w+\(\):`, ""), "marker()", resolver.After, Options{TargetDepth: &depth})
	require.NoError(t, err)
	require.Equal(t, []int{3}, result.Lines)

	assert.Contains(t, readBack(t, path), "def nested():\n        marker()\n")
}

func TestInsert_DryRunDoesNotWrite(t *testing.T) {
	content := "def f():\n    pass\n"
	path := writeTemp(t, "app.py", content)

	exec := New(logger.Quiet{})
	result, err := exec.Insert(path, locator.NewLiteral("pass", true), "x()", resolver.After, Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, StateFormatted, result.State)
	assert.Equal(t, content, readBack(t, path))
	_, held := exec.Record(path)
	assert.False(t, held, "dry run holds no rollback record")
}

func TestInsert_MissingFile(t *testing.T) {
	exec := New(logger.Quiet{})
	_, err := exec.Insert("/nowhere/missing.py", locator.NewLiteral("x", true), "y()", resolver.After, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestInsert_ReinsertOverwritesRecord(t *testing.T) {
	content := "a()\n"
	path := writeTemp(t, "s.py", content)

	exec := New(logger.Quiet{})
	_, err := exec.Insert(path, locator.NewLiteral("a()", true), "b()", resolver.After, Options{})
	require.NoError(t, err)
	afterFirst := readBack(t, path)

	_, err = exec.Insert(path, locator.NewLiteral("b()", true), "c()", resolver.After, Options{})
	require.NoError(t, err)

	// The record now holds the state before the second insert, so rollback
	// undoes only that one.
	require.True(t, exec.Rollback(path))
	assert.Equal(t, afterFirst, readBack(t, path))
}

func TestInsert_DeclarationGetsBoundaryBlankLine(t *testing.T) {
	content := "import os\n\ndef first():\n    pass\n"
	path := writeTemp(t, "app.py", content)

	exec := New(logger.Quiet{})
	_, err := exec.Insert(path, locator.NewLiteral("def first():", true), "def second():\n    pass", resolver.Before, Options{})
	require.NoError(t, err)

	assert.Equal(t, "import os\n\ndef second():\n    pass\n\ndef first():\n    pass\n", readBack(t, path))
}

func TestDecodeText_Fallbacks(t *testing.T) {
	if _, err := decodeText("x", []byte("plain utf-8")); err != nil {
		t.Fatalf("utf-8 rejected: %v", err)
	}

	// Latin-1 bytes that are invalid UTF-8.
	got, err := decodeText("x", []byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	// NUL bytes mark binary content.
	_, err = decodeText("x", []byte{'a', 0x00, 'b'})
	var encErr *EncodingError
	assert.ErrorAs(t, err, &encErr)
}

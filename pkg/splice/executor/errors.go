package executor

import (
	"errors"
	"fmt"

	"github.com/codeweft/weft/pkg/splice/locator"
	"github.com/codeweft/weft/pkg/splice/resolver"
)

// ErrPatternNotFound marks an anchor with zero occurrences in the target.
var ErrPatternNotFound = errors.New("pattern not found")

// InsertError is the failure value of an insertion attempt. It always
// carries the anchor, the attempted mode, and the stage that failed so no
// failure is silent or contextless.
type InsertError struct {
	Path        string
	Anchor      string
	Mode        resolver.Mode
	Stage       State
	Reason      string
	Err         error
	Suggestions []locator.Suggestion
}

func (e *InsertError) Error() string {
	msg := fmt.Sprintf("insert %s (%s, mode %s) failed at %s: %s",
		e.Path, e.Anchor, e.Mode, e.Stage, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InsertError) Unwrap() error { return e.Err }

// EncodingError reports content that could not be decoded as text after
// the fallback encodings were tried.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: content is not decodable as text", e.Path)
}

// WriteError reports a failed write of the modified content. The in-memory
// record was captured before the write, so rollback guidance survives it.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Package logger is the small logging seam the engine and CLI share.
// Commands pick a writer-backed logger or a quiet one; the engine only
// sees the interface.
package logger

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// WriterLogger logs to any writer. Used with os.Stdout in commands and
// with buffers in tests.
type WriterLogger struct {
	Out io.Writer
}

func NewStdout() *WriterLogger {
	return &WriterLogger{Out: os.Stdout}
}

func NewWriter(w io.Writer) *WriterLogger {
	return &WriterLogger{Out: w}
}

func (l *WriterLogger) Logf(format string, args ...interface{}) {
	fmt.Fprintf(l.Out, format, args...)
}

func (l *WriterLogger) Log(msg string) {
	fmt.Fprintln(l.Out, msg)
}

// Quiet discards everything; used for --quiet and library embedding.
type Quiet struct{}

func (Quiet) Logf(format string, args ...interface{}) {}
func (Quiet) Log(msg string)                          {}

// IsInteractive reports whether stdout is attached to a terminal, which
// decides when the spinner UI is worth rendering.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

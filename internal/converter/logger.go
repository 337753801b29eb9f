// =============================================================================
// dtb2x - Logging
// =============================================================================

package converter

import (
	"fmt"
	"io"
)

// Logger is the logging interface used by the converter. The CLI installs a
// stderr logger; tests and library callers can leave the no-op default.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// StderrLogger writes leveled, prefixed lines to a writer, typically
// os.Stderr. Debug lines are emitted only when Verbose is set.
type StderrLogger struct {
	Out     io.Writer
	Verbose bool
}

func (l *StderrLogger) Debug(msg string, args ...interface{}) {
	if l.Verbose {
		fmt.Fprintf(l.Out, "[DEBUG] "+msg+"\n", args...)
	}
}

func (l *StderrLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(l.Out, "[INFO] "+msg+"\n", args...)
}

func (l *StderrLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(l.Out, "[ERROR] "+msg+"\n", args...)
}

// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Warnf writes a "Warning: " prefixed line to w.
func Warnf(w io.Writer, format string, args ...any) {
	Writef(w, "Warning: "+format+"\n", args...)
}

// Errorf writes an "Error: " prefixed line to w.
func Errorf(w io.Writer, format string, args ...any) {
	Writef(w, "Error: "+format+"\n", args...)
}

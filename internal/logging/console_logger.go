// Package logging provides concrete implementations of the hivescript.Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleLogger writes log messages to a writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger that writes to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a ConsoleLogger that writes to out.
func NewWriterLogger(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     out,
		verbose: verbose,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

// IsVerbose reports whether Verbose output is enabled.
func (l *ConsoleLogger) IsVerbose() bool {
	return l.verbose
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}

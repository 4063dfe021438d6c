// Package wardenlog provides the debug logger used by cmd/warden,
// written to stderr and a log file when debug mode is on, and a no-op
// otherwise. Stdlib log.Logger is used directly rather than a
// structured-logging library: the teacher's own debug logger is a
// single *log.Logger writing Printf-style lines, and this package
// keeps that shape rather than introducing a new dependency for a
// debug-only code path no external consumer parses.
package wardenlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var logger *log.Logger

// multiWriter fans writes out to every underlying writer, best-effort.
type multiWriter struct {
	writers []io.Writer
}

func (mw *multiWriter) Write(p []byte) (int, error) {
	for _, w := range mw.writers {
		w.Write(p)
	}
	return len(p), nil
}

// Enable turns on debug logging to stderr and, if it can be opened,
// logPath. Passing an empty logPath defaults to $TMPDIR/warden.log.
func Enable(logPath string) {
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), "warden.log")
	}

	writers := []io.Writer{os.Stderr}
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
		writers = append(writers, f)
		fmt.Fprintf(os.Stderr, "[debug] log file: %s\n", logPath)
	}

	logger = log.New(&multiWriter{writers}, "[warden] ", log.Ltime)
}

// Enabled reports whether debug logging is currently on.
func Enabled() bool {
	return logger != nil
}

// Debugf logs a formatted debug line. It is a no-op unless Enable has
// been called.
func Debugf(format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}

// Warnf logs a formatted warning line, prefixed so it stands out from
// routine debug output.
func Warnf(format string, args ...any) {
	if logger != nil {
		logger.Printf("WARN "+format, args...)
	}
}

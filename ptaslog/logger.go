package ptaslog

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger wraps a charmbracelet/log.Logger writing to a single opened
// file, enabled or disabled as a whole by the --debug flag.
type Logger struct {
	file    *os.File
	logger  *log.Logger
	enabled bool
}

// New returns a Logger that is enabled or disabled as enabled says. An
// enabled Logger writes nothing until Open is called; a disabled one
// makes every logging call a no-op.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled}
}

// Open opens path for appending (creating it if needed) and attaches a
// charmbracelet/log.Logger to it. A no-op if the Logger is disabled.
func (l *Logger) Open(path string) error {
	if !l.enabled {
		return nil
	}
	if l.file != nil {
		return ErrAlreadyOpen
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("ptaslog: open %s: %w", path, err)
	}

	l.file = f
	l.logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
	})

	return nil
}

// Close flushes and closes the underlying file, if open.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Infof logs a leveled info message with printf-style formatting. A
// no-op when the Logger is disabled or not yet Open.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Infof(format, args...)
}

// Warnf logs a leveled warning message. A no-op when the Logger is
// disabled or not yet Open.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Warnf(format, args...)
}

// Errorf logs a leveled error message. A no-op when the Logger is
// disabled or not yet Open.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Errorf(format, args...)
}

// Writer exposes the underlying file as an io.Writer, for callers (such
// as viz.WriteJS) that want to log their output alongside everything
// else. Returns io.Discard if the Logger is disabled or not yet Open.
func (l *Logger) Writer() io.Writer {
	if l.file == nil {
		return io.Discard
	}
	return l.file
}

// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/lfs/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog with a charmbracelet/log handler.
type Logger struct {
	logger  *slog.Logger
	mu      sync.RWMutex
	output  io.Writer
	verbose bool
}

// New creates a Logger writing to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w at info level.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{output: w}
	l.logger = slog.New(l.handler())
	return l
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetVerbose enables or disables debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verbose = verbose
	l.logger = slog.New(l.handler())
}

func (l *Logger) handler() slog.Handler {
	level := log.InfoLevel
	if l.verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(l.output, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Debug logs a diagnostic message, shown only in verbose mode.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

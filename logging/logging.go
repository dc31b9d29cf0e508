// Package logging provides the four-level logger capability used by the error
// handlers, backed by log/slog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jmgilman/go/httperrors/errors"
)

// MetaKey is the attribute under which the meta argument is logged.
const MetaKey = "meta"

// Logger is the logging capability consumed by the handlers.
// Implementations must not block or panic.
type Logger interface {
	Debug(msg string, meta interface{})
	Info(msg string, meta interface{})
	Warn(msg string, meta interface{})
	Error(msg string, meta interface{})
}

// Log routes msg to the method of l matching severity.
// Unknown severities are logged at error level. A nil l is a no-op.
func Log(l Logger, severity errors.Severity, msg string, meta interface{}) {
	if l == nil {
		return
	}

	switch severity {
	case errors.SeverityDebug:
		l.Debug(msg, meta)
	case errors.SeverityInfo:
		l.Info(msg, meta)
	case errors.SeverityWarn:
		l.Warn(msg, meta)
	default:
		l.Error(msg, meta)
	}
}

// slogLogger implements Logger using slog.
type slogLogger struct {
	logger *slog.Logger
}

// NewSlog adapts l to the Logger capability. A nil l uses slog.Default().
func NewSlog(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{logger: l}
}

// Default returns a Logger writing to slog.Default().
func Default() Logger {
	return &slogLogger{logger: slog.Default()}
}

func (l *slogLogger) Debug(msg string, meta interface{}) {
	l.log(slog.LevelDebug, msg, meta)
}

func (l *slogLogger) Info(msg string, meta interface{}) {
	l.log(slog.LevelInfo, msg, meta)
}

func (l *slogLogger) Warn(msg string, meta interface{}) {
	l.log(slog.LevelWarn, msg, meta)
}

func (l *slogLogger) Error(msg string, meta interface{}) {
	l.log(slog.LevelError, msg, meta)
}

func (l *slogLogger) log(level slog.Level, msg string, meta interface{}) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	if meta == nil {
		l.logger.Log(ctx, level, msg)
		return
	}
	l.logger.Log(ctx, level, msg, slog.Any(MetaKey, meta))
}

// nopLogger discards all messages.
type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, interface{}) {}
func (nopLogger) Info(string, interface{})  {}
func (nopLogger) Warn(string, interface{})  {}
func (nopLogger) Error(string, interface{}) {}

// Format selects the slog handler used by NewHandler.
type Format string

const (
	// FormatText writes logfmt-style lines.
	FormatText Format = "text"

	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// ParseLevel parses a string log level into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// NewHandler builds a slog handler for format at level. A nil w writes to
// os.Stderr. Unknown formats fall back to text.
func NewHandler(format Format, level slog.Level, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

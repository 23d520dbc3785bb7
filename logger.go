package bsa

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with array-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogRowAlloc logs the allocation of a row buffer.
func (l *Logger) LogRowAlloc(row, slots int, err error) {
	if err != nil {
		l.Warn("row allocation failed",
			"row", row,
			"slots", slots,
			"error", err,
		)
		return
	}
	l.Debug("row allocated",
		"row", row,
		"slots", slots,
	)
}

// LogRowRelease logs the release of a row buffer.
func (l *Logger) LogRowRelease(row, slots int) {
	l.Debug("row released",
		"row", row,
		"slots", slots,
	)
}

// LogRescan logs a backward max-index rescan after deleting the maximum.
func (l *Logger) LogRescan(from, to int) {
	l.Debug("max index rescanned",
		"from", from,
		"to", to,
	)
}

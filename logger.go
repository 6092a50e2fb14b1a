package clipcache

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/clipcache/model"
)

// Logger wraps slog.Logger with clipcache-specific context.
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

// LogFetch logs a fetch operation.
func (l *Logger) LogFetch(ctx context.Context, id model.ItemID, tag model.TypeTag, hit bool, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"item", uint64(id),
			"tag", string(tag),
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "fetch completed",
		"item", uint64(id),
		"tag", string(tag),
		"hit", hit,
		"bytes", size,
	)
}

// LogEvict logs the eviction of a cached entry.
func (l *Logger) LogEvict(ctx context.Context, id model.ItemID, tag model.TypeTag, size int64) {
	l.DebugContext(ctx, "entry evicted",
		"item", uint64(id),
		"tag", string(tag),
		"bytes", size,
	)
}

// LogRegister logs an item registration.
func (l *Logger) LogRegister(ctx context.Context, id model.ItemID) {
	l.DebugContext(ctx, "item registered",
		"item", uint64(id),
	)
}

// LogUnregister logs an item unregistration.
func (l *Logger) LogUnregister(ctx context.Context, id model.ItemID, freed int64) {
	l.DebugContext(ctx, "item unregistered",
		"item", uint64(id),
		"freed_bytes", freed,
	)
}

package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is a private type so the logger key cannot collide with other packages.
type contextKey string

const loggerKey = contextKey("logger")

// New builds the JSON logger used by the process.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else yields info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default() when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// Helper gives repositories and stores the same logging shortcuts.
// The zero value logs through the context logger.
type Helper struct{}

// LogError logs an error with consistent formatting
func (Helper) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	FromContext(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (Helper) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	FromContext(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (Helper) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	FromContext(ctx).Debug(msg, keyvals...)
}

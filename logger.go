package rivgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with rivgo-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSize adds a vector size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithToken adds a token field to the logger.
func (l *Logger) WithToken(token string) *Logger {
	return &Logger{
		Logger: l.Logger.With("token", token),
	}
}

// LogLabel logs a label generation.
func (l *Logger) LogLabel(ctx context.Context, token string, nnz int, err error) {
	tl := l.WithToken(token)
	if err != nil {
		tl.ErrorContext(ctx, "label failed", "error", err)
	} else {
		tl.DebugContext(ctx, "label generated", "nnz", nnz)
	}
}

// LogWindow logs a label generation for a rune window of a text.
func (l *Logger) LogWindow(ctx context.Context, start, width, nnz int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "window label failed",
			"start", start,
			"width", width,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "window label generated",
			"start", start,
			"width", width,
			"nnz", nnz,
		)
	}
}

// LogDocument logs a document vector build.
func (l *Logger) LogDocument(ctx context.Context, tokens, nnz int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "document failed",
			"tokens", tokens,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "document built",
			"tokens", tokens,
			"nnz", nnz,
			"elapsed", elapsed,
		)
	}
}

// LogContext logs a positional context vector build.
func (l *Logger) LogContext(ctx context.Context, target, window, neighbors, nnz int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "context failed",
			"target", target,
			"window", window,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "context built",
			"target", target,
			"window", window,
			"neighbors", neighbors,
			"nnz", nnz,
			"elapsed", elapsed,
		)
	}
}

// LogEncode logs a key computation.
func (l *Logger) LogEncode(ctx context.Context, kind string, bits int, err error) {
	if err != nil {
		l.WarnContext(ctx, "encode failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"kind", kind,
			"bits", bits,
		)
	}
}

// Package logging provides structured logging for the docslicer MCP server.
// Logs go to stderr as JSON so the stdio transport keeps stdout clean.
package logging

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
)

//nolint:gochecknoglobals // Process-wide default logger.
var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Default returns the process-wide logger, creating it on first use.
func Default() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		if os.Getenv("DOCSLICER_DEBUG") != "" {
			level = slog.LevelDebug
		}
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		defaultLogger = slog.New(handler)
	})
	return defaultLogger
}

// WithTool returns a logger annotated with the tool name.
func WithTool(toolName string) *slog.Logger {
	return Default().With(slog.String("tool", toolName))
}

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves the logger from the context, falling back to
// the default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return Default()
}

// ContextWithRequestID stores a request correlation ID in the context.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext retrieves the request correlation ID, if any.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithContext returns the context logger annotated with the request ID.
func WithContext(ctx context.Context) *slog.Logger {
	logger := LoggerFromContext(ctx)
	if id := RequestIDFromContext(ctx); id != "" {
		logger = logger.With(slog.String("request_id", id))
	}
	return logger
}

// RequestStart logs the beginning of a tool request.
func RequestStart(ctx context.Context, operation string) {
	WithContext(ctx).InfoContext(ctx, "Request started",
		slog.String("operation", operation))
}

// RequestEnd logs the completion of a tool request.
func RequestEnd(ctx context.Context, operation string, success bool, duration time.Duration, err error) {
	logger := WithContext(ctx)
	attrs := []any{
		slog.String("operation", operation),
		slog.Bool("success", success),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.InfoContext(ctx, "Request completed", attrs...)
}

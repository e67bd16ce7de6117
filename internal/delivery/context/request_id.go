// Package context carries per-request values from the HTTP layer down to use cases and adapters.
package context

import (
	"context"
	"log/slog"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	keyRequestID ContextKey = "request_id"
	keyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed on every response and forwarded to the generation API.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequest attaches the request id and a logger already tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyRequestID, requestID)

	return WithLogger(ctx, logger)
}

// RequestIDFrom returns the request id, or "" outside an HTTP request.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger replaces the request-scoped logger, e.g. once the caller is authenticated.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// LoggerFrom returns the request-scoped logger, or fallback when none is attached.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

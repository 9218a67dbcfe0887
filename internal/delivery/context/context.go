// Package context carries the values the delivery layer attaches to a request
// so that use cases can log with them: request id, caller id and a logger
// already enriched with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXUserID carries the caller identity set by the upstream gateway.
	HeaderXUserID = "X-User-Id"
)

type contextKey int

const (
	keyRequestID contextKey = iota
	keyUserID
	keyLogger
)

// echo.Context store key, read by the response envelope.
const echoKeyRequestID = "request_id"

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the id assigned to the request, or "" before the
// request context middleware ran.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithUserID records the authenticated caller.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

// UserIDFrom reports the caller, if the gateway supplied a valid one.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// WithLogger stores a scoped logger. The matching pass uses it to tag every
// statement of a pass with its epoch.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the scoped logger, or fallback when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

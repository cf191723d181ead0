package context

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLength bounds caller supplied ids before they reach logs and task events.
	MaxRequestIDLength = 64
)

// NewRequestID returns raw when it can serve as a request id and a fresh UUID otherwise.
func NewRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > MaxRequestIDLength || strings.ContainsFunc(raw, unicode.IsControl) {
		return uuid.NewString()
	}

	return raw
}

// Scope returns ctx carrying requestID and a logger derived from base that
// tags every record with the id and attrs. HTTP requests and MQTT messages
// are both scoped this way.
func Scope(ctx context.Context, base *slog.Logger, requestID string, attrs ...any) context.Context {
	logger := base.With(slog.String("request_id", requestID)).With(attrs...)

	return WithLogger(WithRequestID(ctx, requestID), logger)
}

// GetRequestID returns the id of the current HTTP request. Requests that
// bypassed the request id middleware get a new one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

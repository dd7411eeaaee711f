package context

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID carries the id that ties an API request to its dispatch job.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger carries the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyUserID carries the authenticated caller or the caller a job was queued for.
	KeyUserID ContextKey = "user_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// ValidRequestID reports whether a client supplied id is safe to log and forward
// as a Pub/Sub attribute.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// GetRequestID returns the request ID stored on echo.Context, then the one on
// the request context. A fresh UUID is returned when neither is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// SetUserID records the authenticated caller on both echo.Context and the
// request context, so handlers and the service layer see the same id.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(KeyUserID), userID)
	c.SetRequest(c.Request().WithContext(WithUserID(c.Request().Context(), userID)))
}

// GetUserID returns the caller set by SetUserID.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(string(KeyUserID)).(string)

	return userID, ok && userID != ""
}

// WithUserID returns a new context with the caller id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext returns the caller id or "".
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(KeyUserID).(string)

	return userID
}

// GetLogger returns the request-scoped logger, or nil when none was attached.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
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

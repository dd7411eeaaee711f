package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "pushsvc/internal/delivery/context"
	domainerrors "pushsvc/internal/domain/errors"
	"pushsvc/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware verifies bearer credentials with the identity provider.
type AuthMiddleware struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, logger: logger}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer token.
// Nothing after this middleware runs for an unauthenticated request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		ctx := c.Request().Context()
		userID, err := m.identity.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Bearer token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		deliverycontext.SetUserID(c, userID)

		// Tag the request-scoped logger with the caller
		ctx = c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", userID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// GetUserID returns the authenticated caller set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

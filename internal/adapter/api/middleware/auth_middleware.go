package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cambiazo/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *firebase.AuthClient
}

func NewAuthMiddleware(authClient *firebase.AuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// Authenticate requires a valid Bearer token and stores the caller's uid and
// email claim in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		uid, email, err := m.authClient.VerifyTokenWithClaims(c.Request().Context(), token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)
		c.Set("email", email)

		return next(c)
	}
}

// OptionalAuth verifies a token when one is present but never rejects the
// request; anonymous callers just proceed without a uid.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return next(c)
		}

		uid, email, err := m.authClient.VerifyTokenWithClaims(c.Request().Context(), token)
		if err != nil {
			return next(c)
		}

		c.Set("uid", uid)
		c.Set("email", email)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/automeet-app/automeet/pkg/jwt"
)

const (
	// UserIDContextKey is the echo context key for the authenticated user id
	UserIDContextKey = "user_id"
	// UserEmailContextKey is the echo context key for the authenticated user email
	UserEmailContextKey = "user_email"
)

// EchoAuth returns an Echo middleware that validates the bearer token and
// sets "user_id" (uuid.UUID) and "user_email" into the Echo context
func EchoAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := manager.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(UserEmailContextKey, claims.Email)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	// Try Authorization header first
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Try cookie as fallback
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}

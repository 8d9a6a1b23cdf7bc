package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fixora/booking-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers and RBAC.
const (
	IdentityKey = "identity"
	RoleKey     = "role"
)

// CookieName is the session cookie carrying the JWT.
const CookieName = "token"

// Auth gates protected routes behind a verified session token. The token is
// read from the "token" cookie first, then from an Authorization: Bearer
// header. A missing token and an invalid/expired one are both 401; the
// distinction only shows in the message.
func Auth(verifier ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login")
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(IdentityKey, identity)
			c.Set(RoleKey, identity.Role)

			return next(c)
		}
	}
}

// extractToken looks for the session token in the cookie, falling back to the
// Authorization header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

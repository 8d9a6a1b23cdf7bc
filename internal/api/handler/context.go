package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixora/booking-api/internal/api/middleware"
	"github.com/fixora/booking-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Presence
// proves the middleware ran; a handler reached without it is a routing bug,
// answered with 401 rather than a panic.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(ports.Identity)
	if !ok || identity.UserID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

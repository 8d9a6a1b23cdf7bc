package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

func runRBAC(t *testing.T, role any, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(RoleKey, role)
	}

	handler := RBAC(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRBAC_AllowedRole(t *testing.T) {
	if err := runRBAC(t, domain.RoleAdmin, domain.RoleAdmin); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
}

func TestRBAC_DeniedRole(t *testing.T) {
	err := runRBAC(t, domain.RoleUser, domain.RoleAdmin)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	err := runRBAC(t, nil, domain.RoleAdmin)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

// runAdminRoute sends a request through the full Auth → RBAC chain the way an
// /api/admin route is wired in the router.
func runAdminRoute(t *testing.T, verifier *stubVerifier, prep func(*http.Request)) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	prep(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	chained := Auth(verifier)(RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))
	return chained(c)
}

func TestAdminRoute_InvalidTokenIs401NotForbidden(t *testing.T) {
	// A tampered or expired token must fail authentication before the role
	// check ever runs: 401, never 403.
	verifier := &stubVerifier{err: domain.ErrInvalidToken}

	err := runAdminRoute(t, verifier, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "expired-or-tampered"})
	})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAdminRoute_MissingTokenIs401NotForbidden(t *testing.T) {
	verifier := &stubVerifier{identity: ports.Identity{UserID: "u1", Role: domain.RoleUser}}

	err := runAdminRoute(t, verifier, func(*http.Request) {})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAdminRoute_AuthenticatedNonAdminIs403(t *testing.T) {
	verifier := &stubVerifier{identity: ports.Identity{UserID: "u1", Role: domain.RoleUser}}

	err := runAdminRoute(t, verifier, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "valid-user-token"})
	})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestAdminRoute_AdminPasses(t *testing.T) {
	verifier := &stubVerifier{identity: ports.Identity{UserID: "a1", Role: domain.RoleAdmin}}

	if err := runAdminRoute(t, verifier, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "valid-admin-token"})
	}); err != nil {
		t.Fatalf("admin should pass the full chain: %v", err)
	}
}

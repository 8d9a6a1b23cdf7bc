package ports

import "github.com/fixora/booking-api/internal/core/domain"

// Identity is the {userId, email, role} tuple recovered from a verified
// session token. It is the only thing handlers know about the caller.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// TokenService issues and verifies stateless session tokens. Verify returns
// domain.ErrInvalidToken for every failure mode (malformed, bad signature,
// expired) — callers never need to distinguish them.
type TokenService interface {
	Issue(identity Identity) (string, error)
	Verify(token string) (Identity, error)
}

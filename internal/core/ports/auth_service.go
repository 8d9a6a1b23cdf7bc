package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// RegisterInput carries everything the registration flow needs. AdminSecret
// elevates the role to admin when it matches the server-held secret; it is
// never stored.
type RegisterInput struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	AdminSecret string
}

// AuthResult pairs the created/authenticated user with a fresh session token.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

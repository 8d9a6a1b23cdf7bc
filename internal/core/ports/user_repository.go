package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// UserRepository persists user credentials and profiles. Emails are stored
// lowercased; Create returns domain.ErrEmailExists on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users newest-first, optionally filtered by role.
	List(ctx context.Context, role string) ([]*domain.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

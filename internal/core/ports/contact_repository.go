package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// ContactRepository persists public contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	// List returns messages newest-first.
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

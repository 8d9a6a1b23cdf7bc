package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// ContactInput is a public contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// CreateServiceInput carries the data for a new catalog entry.
type CreateServiceInput struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Duration    string
	Image       string
	Features    []string
}

// UpdateServiceInput is a partial patch; nil fields are left untouched.
type UpdateServiceInput struct {
	Title       *string
	Description *string
	Category    *string
	Price       *float64
	Duration    *string
	Image       *string
	Features    []string
}

// CatalogService manages the bookable service catalog. Mutations are gated to
// admins at the router; the service itself performs no role checks.
type CatalogService interface {
	List(ctx context.Context, category string) ([]*domain.Service, error)
	Get(ctx context.Context, serviceID string) (*domain.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, serviceID string, patch UpdateServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, serviceID string) error
}

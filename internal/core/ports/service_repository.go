package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// ServiceRepository persists the bookable service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// List returns services newest-first, optionally filtered by category.
	List(ctx context.Context, category string) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

// CatalogService manages the bookable service catalog. Admin-only access to
// mutations is enforced at the router, not here.
type CatalogService struct {
	services ports.ServiceRepository
	logger   zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, logger: logger}
}

// List returns catalog entries newest-first. An unknown category filter is
// ignored rather than rejected.
func (s *CatalogService) List(ctx context.Context, category string) ([]*domain.Service, error) {
	if !domain.ValidCategory(category) {
		category = ""
	}
	return s.services.List(ctx, category)
}

func (s *CatalogService) Get(ctx context.Context, serviceID string) (*domain.Service, error) {
	return s.services.FindByID(ctx, serviceID)
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	svc := &domain.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Price:       input.Price,
		Duration:    strings.TrimSpace(input.Duration),
		Image:       strings.TrimSpace(input.Image),
		Features:    input.Features,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}

	created, err := s.services.Create(ctx, svc)
	if err != nil {
		s.logger.Error().Err(err).Str("title", svc.Title).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Str("service_id", created.ID).Str("category", created.Category).Msg("service created")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, serviceID string, patch ports.UpdateServiceInput) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		svc.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		svc.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil && domain.ValidCategory(*patch.Category) {
		svc.Category = *patch.Category
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.Duration != nil {
		svc.Duration = strings.TrimSpace(*patch.Duration)
	}
	if patch.Image != nil {
		svc.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.Features != nil {
		svc.Features = patch.Features
	}
	svc.UpdatedAt = time.Now().UTC()

	return s.services.Update(ctx, svc)
}

func (s *CatalogService) Delete(ctx context.Context, serviceID string) error {
	if _, err := s.services.FindByID(ctx, serviceID); err != nil {
		return err
	}
	if err := s.services.Delete(ctx, serviceID); err != nil {
		s.logger.Error().Err(err).Str("service_id", serviceID).Msg("failed to delete service")
		return err
	}
	s.logger.Info().Str("service_id", serviceID).Msg("service deleted")
	return nil
}

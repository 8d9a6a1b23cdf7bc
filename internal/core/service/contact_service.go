package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

// ContactService stores public contact-form submissions and pings the site
// operator about each one.
type ContactService struct {
	contacts ports.ContactRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewContactService(contacts ports.ContactRepository, notifier ports.Notifier, logger zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier, logger: logger}
}

// Submit persists the message with status "new" and dispatches a best-effort
// operator notification after the write commits.
func (s *ContactService) Submit(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
	now := time.Now().UTC()
	msg := &domain.ContactMessage{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   strings.TrimSpace(input.Message),
		Status:    domain.ContactNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.contacts.Create(ctx, msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact message")
		return nil, err
	}

	s.notifier.ContactReceived(ports.ContactNotification{
		Name:    created.Name,
		Email:   created.Email,
		Phone:   created.Phone,
		Subject: created.Subject,
		Message: created.Message,
	})

	s.logger.Info().Str("contact_id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

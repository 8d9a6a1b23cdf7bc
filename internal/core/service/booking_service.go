package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/api/metrics"
	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

// BookingService is the only component that mutates bookings. It enforces the
// ownership rule (owner or admin), forces new bookings to pending, restricts
// status changes to admins, and triggers best-effort notifications after the
// primary write commits.
type BookingService struct {
	bookings ports.BookingRepository
	services ports.ServiceRepository
	users    ports.UserRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	services ports.ServiceRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		services: services,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// canAccess applies the ownership rule: a booking is visible and mutable only
// to its owner or an admin.
func canAccess(identity ports.Identity, b *domain.Booking) bool {
	return identity.IsAdmin() || b.UserID == identity.UserID
}

// Create persists a new booking for the acting identity. The referenced
// service must exist (domain.ErrServiceNotFound otherwise — nothing is
// written); the service title is snapshotted into the booking; status is
// always pending regardless of anything present in the request payload.
func (s *BookingService) Create(ctx context.Context, identity ports.Identity, input ports.CreateBookingInput) (*domain.Booking, error) {
	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:      identity.UserID,
		ServiceID:   svc.ID,
		ServiceName: svc.Title,
		Date:        strings.TrimSpace(input.Date),
		Time:        strings.TrimSpace(input.Time),
		Address:     strings.TrimSpace(input.Address),
		Phone:       strings.TrimSpace(input.Phone),
		Notes:       strings.TrimSpace(input.Notes),
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(svc.Category).Inc()
	s.logger.Info().
		Str("booking_id", created.ID).
		Str("user_id", identity.UserID).
		Str("service_id", svc.ID).
		Msg("booking created")

	s.notifyOwner(ctx, created, "", identity)

	return created, nil
}

// Get returns a single booking, subject to the ownership rule.
func (s *BookingService) Get(ctx context.Context, identity ports.Identity, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canAccess(identity, booking) {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

// List returns the identity's bookings newest-created-first. Admins see every
// booking. An unknown status filter is ignored rather than rejected.
func (s *BookingService) List(ctx context.Context, identity ports.Identity, statusFilter string) ([]*domain.Booking, error) {
	filter := ports.ListBookingsFilter{}
	if !identity.IsAdmin() {
		filter.UserID = identity.UserID
	}
	if domain.BookingStatus(statusFilter).IsValid() {
		filter.Status = statusFilter
	}
	return s.bookings.List(ctx, filter)
}

// Update applies a partial patch. Schedule and contact fields may be changed
// by the owner or an admin; a status field in the patch is honoured only for
// admins and silently ignored for everyone else. When an admin actually
// changes the status, a status-update notification is dispatched after the
// write commits. There is no transition table: any status may follow any
// other.
func (s *BookingService) Update(ctx context.Context, identity ports.Identity, bookingID string, patch ports.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canAccess(identity, booking) {
		return nil, domain.ErrForbidden
	}

	if patch.Date != nil {
		booking.Date = strings.TrimSpace(*patch.Date)
	}
	if patch.Time != nil {
		booking.Time = strings.TrimSpace(*patch.Time)
	}
	if patch.Address != nil {
		booking.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.Phone != nil {
		booking.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Notes != nil {
		booking.Notes = strings.TrimSpace(*patch.Notes)
	}

	statusChanged := false
	if patch.Status != nil && identity.IsAdmin() {
		next := domain.BookingStatus(*patch.Status)
		if next.IsValid() && next != booking.Status {
			booking.Status = next
			statusChanged = true
		}
	}

	booking.UpdatedAt = time.Now().UTC()

	updated, err := s.bookings.Update(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("booking_id", bookingID).Msg("failed to update booking")
		return nil, err
	}

	if statusChanged {
		metrics.BookingStatusChangesTotal.WithLabelValues(string(updated.Status)).Inc()
		s.logger.Info().
			Str("booking_id", updated.ID).
			Str("status", string(updated.Status)).
			Msg("booking status changed")
		s.notifyOwner(ctx, updated, string(updated.Status), identity)
	}

	return updated, nil
}

// Delete removes a booking permanently. There is no soft-delete or audit
// trail: once gone, it is gone.
func (s *BookingService) Delete(ctx context.Context, identity ports.Identity, bookingID string) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !canAccess(identity, booking) {
		return domain.ErrForbidden
	}
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		s.logger.Error().Err(err).Str("booking_id", bookingID).Msg("failed to delete booking")
		return err
	}
	s.logger.Info().Str("booking_id", bookingID).Str("actor_id", identity.UserID).Msg("booking deleted")
	return nil
}

// notifyOwner dispatches a confirmation (status == "") or status-update email
// to the booking owner. The owner's profile is looked up for the recipient
// address; any failure here is logged and dropped — notifications never fail
// a booking operation.
func (s *BookingService) notifyOwner(ctx context.Context, b *domain.Booking, status string, actor ports.Identity) {
	owner, err := s.users.FindByID(ctx, b.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("booking_id", b.ID).Msg("owner lookup failed, notification skipped")
		return
	}

	n := ports.BookingNotification{
		RecipientEmail: owner.Email,
		RecipientName:  owner.Name,
		BookingID:      b.ID,
		ServiceName:    b.ServiceName,
		Date:           b.Date,
		Time:           b.Time,
		Address:        b.Address,
		Status:         status,
	}
	if status == "" {
		s.notifier.BookingConfirmation(n)
	} else {
		s.notifier.BookingStatusUpdate(n)
	}
}

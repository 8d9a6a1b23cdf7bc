package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// CreateBookingInput carries the data for a new booking. Any status present
// in the request payload is discarded before reaching this struct: new
// bookings always start as pending.
type CreateBookingInput struct {
	ServiceID string
	Date      string
	Time      string
	Address   string
	Phone     string
	Notes     string
}

// UpdateBookingInput is a partial patch; nil fields are left untouched.
// Status is honoured only when the acting identity is an admin — for anyone
// else it is silently ignored.
type UpdateBookingInput struct {
	Date    *string
	Time    *string
	Address *string
	Phone   *string
	Notes   *string
	Status  *string
}

// BookingService is the only component that mutates bookings. Every operation
// takes the acting identity and enforces the ownership rule: a booking is
// visible and mutable only to its owner or an admin.
type BookingService interface {
	Create(ctx context.Context, identity Identity, input CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, identity Identity, bookingID string) (*domain.Booking, error)
	// List returns the identity's own bookings (all bookings for admins),
	// optionally filtered by status, newest-created-first.
	List(ctx context.Context, identity Identity, statusFilter string) ([]*domain.Booking, error)
	Update(ctx context.Context, identity Identity, bookingID string, patch UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, identity Identity, bookingID string) error
}

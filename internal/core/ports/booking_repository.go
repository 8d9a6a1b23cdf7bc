package ports

import (
	"context"

	"github.com/fixora/booking-api/internal/core/domain"
)

// ListBookingsFilter carries the query parameters for listing bookings.
// UserID is enforced by the service layer: empty means no owner filter (admin).
type ListBookingsFilter struct {
	UserID string
	Status string
	Limit  int64 // 0 = no limit
}

// BookingRepository defines persistence for bookings. Update replaces the
// stored document with the given one (last-write-wins; there is no version
// field, concurrent updates race by design).
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns bookings matching filter, newest-created-first.
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

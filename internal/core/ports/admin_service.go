package ports

import (
	"context"
	"time"

	"github.com/fixora/booking-api/internal/core/domain"
)

// UserSummary is a user row in the admin users listing, enriched with the
// number of bookings the user has made.
type UserSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Bookings  int64     `json:"bookings"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyRevenue is one month's completed-booking revenue.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // e.g. "Jan 2026"
	Revenue float64 `json:"revenue"`
}

// ServicePopularity counts bookings per service title.
type ServicePopularity struct {
	Service  string `json:"service"`
	Bookings int    `json:"bookings"`
}

// RecentBooking is a booking row in the dashboard feed, enriched with the
// owner's name and email.
type RecentBooking struct {
	ID          string               `json:"id"`
	ServiceName string               `json:"service_name"`
	UserName    string               `json:"user_name"`
	UserEmail   string               `json:"user_email"`
	Status      domain.BookingStatus `json:"status"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AnalyticsReport is the admin dashboard payload.
type AnalyticsReport struct {
	TotalBookings     int64                          `json:"total_bookings"`
	TotalUsers        int64                          `json:"total_users"`
	TotalServices     int64                          `json:"total_services"`
	TotalRevenue      float64                        `json:"total_revenue"`
	BookingsByStatus  map[domain.BookingStatus]int64 `json:"bookings_by_status"`
	MonthlyRevenue    []MonthlyRevenue               `json:"monthly_revenue"`
	ServicePopularity []ServicePopularity            `json:"service_popularity"`
	RecentBookings    []RecentBooking                `json:"recent_bookings"`
}

// AdminBooking is a booking row enriched with owner contact details for the
// admin listing.
type AdminBooking struct {
	domain.Booking
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
}

// AdminService serves the admin-only read views.
type AdminService interface {
	// ListUsers returns all users newest-first, optionally filtered by role.
	ListUsers(ctx context.Context, role string) ([]UserSummary, error)
	// ListBookings returns every booking newest-first with owner info,
	// optionally filtered by status.
	ListBookings(ctx context.Context, status string) ([]AdminBooking, error)
	Analytics(ctx context.Context) (*AnalyticsReport, error)
}

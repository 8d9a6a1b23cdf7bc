package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

const (
	popularityLimit = 10
	recentLimit     = 10
	revenueMonths   = 12
)

// AdminService serves the admin-only read views: the users listing and the
// dashboard analytics.
type AdminService struct {
	users    ports.UserRepository
	bookings ports.BookingRepository
	services ports.ServiceRepository
	logger   zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	bookings ports.BookingRepository,
	services ports.ServiceRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, bookings: bookings, services: services, logger: logger}
}

// ListUsers returns all users newest-first, each with its booking count.
// Password hashes never appear in the summary.
func (s *AdminService) ListUsers(ctx context.Context, role string) ([]ports.UserSummary, error) {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		role = ""
	}

	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		count, err := s.bookings.CountByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ports.UserSummary{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Role:      u.Role,
			Bookings:  count,
			CreatedAt: u.CreatedAt,
		})
	}
	return summaries, nil
}

// ListBookings returns every booking newest-first with the owner's contact
// details, optionally filtered by status. Owners deleted out-of-band show as
// "Unknown" rather than dropping the row.
func (s *AdminService) ListBookings(ctx context.Context, status string) ([]ports.AdminBooking, error) {
	filter := ports.ListBookingsFilter{}
	if domain.BookingStatus(status).IsValid() {
		filter.Status = status
	}

	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*domain.User)
	rows := make([]ports.AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		owner, ok := owners[b.UserID]
		if !ok {
			owner, err = s.users.FindByID(ctx, b.UserID)
			if err != nil {
				owner = nil
			}
			owners[b.UserID] = owner
		}

		row := ports.AdminBooking{Booking: *b, UserName: "Unknown", UserEmail: "Unknown", UserPhone: "Unknown"}
		if owner != nil {
			row.UserName = owner.Name
			row.UserEmail = owner.Email
			row.UserPhone = owner.Phone
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Analytics assembles the dashboard payload: totals, bookings by status,
// revenue from completed bookings (total and per trailing month), service
// popularity, and the most recent bookings with owner info.
func (s *AdminService) Analytics(ctx context.Context) (*ports.AnalyticsReport, error) {
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	totalServices, err := s.services.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range []domain.BookingStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled,
	} {
		if _, ok := byStatus[st]; !ok {
			byStatus[st] = 0
		}
	}

	priceByService, err := s.servicePrices(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := s.bookings.List(ctx, ports.ListBookingsFilter{Status: string(domain.StatusCompleted)})
	if err != nil {
		return nil, err
	}
	totalRevenue, monthly := revenueBreakdown(completed, priceByService, time.Now().UTC())

	all, err := s.bookings.List(ctx, ports.ListBookingsFilter{})
	if err != nil {
		return nil, err
	}
	popularity := servicePopularity(all)

	recent, err := s.recentBookings(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.AnalyticsReport{
		TotalBookings:     totalBookings,
		TotalUsers:        totalUsers,
		TotalServices:     totalServices,
		TotalRevenue:      totalRevenue,
		BookingsByStatus:  byStatus,
		MonthlyRevenue:    monthly,
		ServicePopularity: popularity,
		RecentBookings:    recent,
	}, nil
}

func (s *AdminService) servicePrices(ctx context.Context) (map[string]float64, error) {
	services, err := s.services.List(ctx, "")
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(services))
	for _, svc := range services {
		prices[svc.ID] = svc.Price
	}
	return prices, nil
}

// revenueBreakdown sums completed-booking revenue in total and per month for
// the trailing revenueMonths months (oldest first). Bookings whose service no
// longer exists contribute nothing, matching how a missing catalog entry
// behaved in the dashboard before.
func revenueBreakdown(completed []*domain.Booking, prices map[string]float64, now time.Time) (float64, []ports.MonthlyRevenue) {
	type bucket struct {
		label   string
		revenue float64
	}

	buckets := make([]bucket, revenueMonths)
	index := make(map[string]int, revenueMonths)
	for i := 0; i < revenueMonths; i++ {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, i-(revenueMonths-1), 0)
		label := month.Format("Jan 2006")
		buckets[i] = bucket{label: label}
		index[month.Format("2006-01")] = i
	}

	var total float64
	for _, b := range completed {
		price, ok := prices[b.ServiceID]
		if !ok {
			continue
		}
		total += price
		if i, ok := index[b.CreatedAt.UTC().Format("2006-01")]; ok {
			buckets[i].revenue += price
		}
	}

	monthly := make([]ports.MonthlyRevenue, revenueMonths)
	for i, bk := range buckets {
		monthly[i] = ports.MonthlyRevenue{Month: bk.label, Revenue: bk.revenue}
	}
	return total, monthly
}

// servicePopularity counts bookings per denormalized service name and keeps
// the top entries, most-booked first.
func servicePopularity(bookings []*domain.Booking) []ports.ServicePopularity {
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.ServiceName]++
	}

	popularity := make([]ports.ServicePopularity, 0, len(counts))
	for name, n := range counts {
		popularity = append(popularity, ports.ServicePopularity{Service: name, Bookings: n})
	}
	sort.Slice(popularity, func(i, j int) bool {
		if popularity[i].Bookings != popularity[j].Bookings {
			return popularity[i].Bookings > popularity[j].Bookings
		}
		return popularity[i].Service < popularity[j].Service
	})
	if len(popularity) > popularityLimit {
		popularity = popularity[:popularityLimit]
	}
	return popularity
}

func (s *AdminService) recentBookings(ctx context.Context) ([]ports.RecentBooking, error) {
	bookings, err := s.bookings.List(ctx, ports.ListBookingsFilter{Limit: recentLimit})
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*domain.User)
	recent := make([]ports.RecentBooking, 0, len(bookings))
	for _, b := range bookings {
		owner, ok := owners[b.UserID]
		if !ok {
			owner, err = s.users.FindByID(ctx, b.UserID)
			if err != nil {
				owner = nil // owner deleted out-of-band; keep the row
			}
			owners[b.UserID] = owner
		}

		row := ports.RecentBooking{
			ID:          b.ID,
			ServiceName: b.ServiceName,
			UserName:    "Unknown",
			UserEmail:   "Unknown",
			Status:      b.Status,
			Date:        b.Date,
			Time:        b.Time,
			CreatedAt:   b.CreatedAt,
		}
		if owner != nil {
			row.UserName = owner.Name
			row.UserEmail = owner.Email
		}
		recent = append(recent, row)
	}
	return recent, nil
}

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

// --- users ---

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User

	findByIDErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("user_%d", r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, role string) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for _, u := range r.users {
		if role == "" || u.Role == role {
			users = append(users, cloneUser(u))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

// --- bookings ---

type stubBookingRepo struct {
	seq      int
	bookings map[string]*domain.Booking

	lastFilter ports.ListBookingsFilter
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	copy := cloneBooking(b)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("booking_%d", r.seq)
	}
	r.bookings[copy.ID] = cloneBooking(copy)
	return cloneBooking(copy), nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) List(_ context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := r.bookings[b.ID]; !ok {
		return nil, domain.ErrBookingNotFound
	}
	r.bookings[b.ID] = cloneBooking(b)
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *stubBookingRepo) CountByStatus(_ context.Context) (map[domain.BookingStatus]int64, error) {
	counts := make(map[domain.BookingStatus]int64)
	for _, b := range r.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (r *stubBookingRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

// --- services ---

type stubServiceRepo struct {
	seq      int
	services map[string]*domain.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[string]*domain.Service)}
}

func cloneService(s *domain.Service) *domain.Service {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	copy := cloneService(s)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("svc_%d", r.seq)
	}
	r.services[copy.ID] = cloneService(copy)
	return cloneService(copy), nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return cloneService(s), nil
}

func (r *stubServiceRepo) List(_ context.Context, category string) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0)
	for _, s := range r.services {
		if category == "" || s.Category == category {
			out = append(out, cloneService(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if _, ok := r.services[s.ID]; !ok {
		return nil, domain.ErrServiceNotFound
	}
	r.services[s.ID] = cloneService(s)
	return cloneService(s), nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *stubServiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.services)), nil
}

// --- contacts ---

type stubContactRepo struct {
	seq      int
	messages []*domain.ContactMessage
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{}
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	copy := *m
	r.seq++
	copy.ID = fmt.Sprintf("contact_%d", r.seq)
	r.messages = append(r.messages, &copy)
	clone := copy
	return &clone, nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	out := make([]*domain.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		clone := *r.messages[i]
		out = append(out, &clone)
	}
	return out, nil
}

// --- notifier ---

type recordingNotifier struct {
	confirmations []ports.BookingNotification
	statusUpdates []ports.BookingNotification
	contacts      []ports.ContactNotification
}

func (n *recordingNotifier) BookingConfirmation(m ports.BookingNotification) {
	n.confirmations = append(n.confirmations, m)
}

func (n *recordingNotifier) BookingStatusUpdate(m ports.BookingNotification) {
	n.statusUpdates = append(n.statusUpdates, m)
}

func (n *recordingNotifier) ContactReceived(m ports.ContactNotification) {
	n.contacts = append(n.contacts, m)
}

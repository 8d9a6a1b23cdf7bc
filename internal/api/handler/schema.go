package handler

import (
	"github.com/fixora/booking-api/internal/core/domain"
	"github.com/fixora/booking-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard envelope for mutations without a body.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=50"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required,min=10,max=15"`
	Password    string `json:"password"     validate:"required,min=6,max=100"`
	AdminSecret string `json:"admin_secret"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// --- Bookings ---

// createBookingRequest deliberately has no status field: a status supplied by
// the client on create is discarded and every new booking starts pending.
type createBookingRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Date      string `json:"date"       validate:"required"`
	Time      string `json:"time"       validate:"required"`
	Address   string `json:"address"    validate:"required,min=10,max=500"`
	Phone     string `json:"phone"      validate:"required,min=10,max=15"`
	Notes     string `json:"notes"      validate:"max=1000"`
}

// updateBookingRequest is a partial patch; absent fields stay untouched.
type updateBookingRequest struct {
	Date    *string `json:"date"    validate:"omitempty,min=1"`
	Time    *string `json:"time"    validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,min=10,max=500"`
	Phone   *string `json:"phone"   validate:"omitempty,min=10,max=15"`
	Notes   *string `json:"notes"   validate:"omitempty,max=1000"`
	Status  *string `json:"status"  validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type bookingResponse struct {
	Booking *domain.Booking `json:"booking"`
}

type bookingsResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
	Total    int               `json:"total"`
}

// --- Services ---

type createServiceRequest struct {
	Title       string   `json:"title"       validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category"    validate:"required,oneof=electrician ac"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Duration    string   `json:"duration"    validate:"required"`
	Image       string   `json:"image"       validate:"required"`
	Features    []string `json:"features"`
}

type updateServiceRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,min=3,max=100"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=electrician ac"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Duration    *string  `json:"duration"    validate:"omitempty,min=1"`
	Image       *string  `json:"image"       validate:"omitempty,min=1"`
	Features    []string `json:"features"`
}

type serviceResponse struct {
	Service *domain.Service `json:"service"`
}

type servicesResponse struct {
	Services []*domain.Service `json:"services"`
	Total    int               `json:"total"`
}

// --- Admin ---

type usersResponse struct {
	Users []ports.UserSummary `json:"users"`
	Total int                 `json:"total"`
}

type adminBookingsResponse struct {
	Bookings []ports.AdminBooking `json:"bookings"`
	Total    int                  `json:"total"`
}

type contactsResponse struct {
	Messages []*domain.ContactMessage `json:"messages"`
	Total    int                      `json:"total"`
}

// --- Contact ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=50"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required,min=10,max=15"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether s is one of the four known statuses. There is no
// transition table: an admin may move a booking from any status to any other.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is the core aggregate. UserID and ServiceID are immutable after
// creation; ServiceName is a snapshot of the service title at booking time so
// the booking stays readable even if the catalog entry changes later.
type Booking struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	UserID      string        `json:"user_id" bson:"user_id"`
	ServiceID   string        `json:"service_id" bson:"service_id"`
	ServiceName string        `json:"service_name" bson:"service_name"`
	Date        string        `json:"date" bson:"date"`
	Time        string        `json:"time" bson:"time"`
	Address     string        `json:"address" bson:"address"`
	Phone       string        `json:"phone" bson:"phone"`
	Notes       string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Status      BookingStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

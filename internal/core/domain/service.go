package domain

import (
	"errors"
	"time"
)

const (
	CategoryElectrician = "electrician"
	CategoryAC          = "ac"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a bookable catalog entry (e.g. "AC Installation").
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Duration    string    `json:"duration" bson:"duration"`
	Image       string    `json:"image" bson:"image"`
	Features    []string  `json:"features" bson:"features"`
	Rating      float64   `json:"rating" bson:"rating"`
	Reviews     int       `json:"reviews" bson:"reviews"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidCategory reports whether c is a known service category.
func ValidCategory(c string) bool {
	return c == CategoryElectrician || c == CategoryAC
}

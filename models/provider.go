package models

import "time"

// Service type values offered by providers.
const (
	ServiceWalking  = "walking"
	ServiceBoarding = "boarding"
	ServiceVetCare  = "vet_care"
	ServiceGrooming = "grooming"
	ServiceSitting  = "sitting"
)

// Provider represents a pet-care service provider (walker, hotel, vet).
type Provider struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Email        string   `bson:"email" json:"email"`
	Phone        string   `bson:"phone,omitempty" json:"phone,omitempty"`
	ServiceTypes []string `bson:"service_types" json:"service_types"` // e.g. "walking", "boarding"
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	City         string   `bson:"city,omitempty" json:"city,omitempty"`
	Latitude     float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Rating       float64  `bson:"rating" json:"rating"`
	RatingCount  int      `bson:"rating_count" json:"rating_count"`
	IsActive     bool     `bson:"is_active" json:"is_active"`
	FCMToken     string   `bson:"fcm_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

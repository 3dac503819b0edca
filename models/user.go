package models

import "time"

// User represents a pet owner account.
type User struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	IsActive bool   `bson:"is_active" json:"is_active"`
	FCMToken string `bson:"fcm_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

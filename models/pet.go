package models

import "time"

// Pet represents one of an owner's animals.
type Pet struct {
	ID      string `bson:"id" json:"id"`
	OwnerID string `bson:"owner_id" json:"owner_id"`
	Name    string `bson:"name" json:"name"`
	Species string `bson:"species" json:"species"` // "dog", "cat", ...
	Breed   string `bson:"breed,omitempty" json:"breed,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

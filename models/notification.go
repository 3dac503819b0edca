package models

import "time"

// Notification type values written by the engines.
const (
	NotificationRecurringCreated = "recurring_created"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationBookingAccepted  = "booking_accepted"
	NotificationBookingCompleted = "booking_completed"
)

// Notification is one row in a recipient's in-app notification feed.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipient_id" json:"recipient_id"`
	Type        string    `bson:"type" json:"type"`
	Title       string    `bson:"title" json:"title"`
	Message     string    `bson:"message" json:"message"`
	IsRead      bool      `bson:"is_read" json:"is_read"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

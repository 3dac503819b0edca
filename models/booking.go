package models

import "time"

// Booking status values. Status only moves forward through
// pending -> accepted -> in_progress -> completed, or sideways to cancelled.
// Cancellation is terminal.
const (
	BookingStatusPending    = "pending"
	BookingStatusAccepted   = "accepted"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents one concrete scheduled appointment between an owner and
// a provider, possibly generated as an occurrence of a recurring series.
type Booking struct {
	ID         string `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	OwnerID    string `bson:"owner_id" json:"owner_id"`       // Pet owner who booked
	ProviderID string `bson:"provider_id" json:"provider_id"` // Provider who was booked

	ServiceName   string  `bson:"service_name" json:"service_name"` // e.g. "Dog Walking", "Boarding"
	Status        string  `bson:"status" json:"status"`
	ScheduledDate string  `bson:"scheduled_date" json:"scheduled_date"` // "2006-01-02"
	ScheduledTime string  `bson:"scheduled_time" json:"scheduled_time"` // "HH:MM"
	DurationMins  int     `bson:"duration_minutes" json:"duration_minutes"`
	TotalAmount   float64 `bson:"total_amount" json:"total_amount"`
	PetCount      int     `bson:"pet_count" json:"pet_count"`

	PickupAddress       string  `bson:"pickup_address" json:"pickup_address"`
	PickupLat           float64 `bson:"pickup_lat" json:"pickup_lat"`
	PickupLng           float64 `bson:"pickup_lng" json:"pickup_lng"`
	SpecialInstructions string  `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`

	// Recurrence linkage. Empty RecurringSeriesID means a one-off booking.
	RecurringSeriesID string `bson:"recurring_series_id,omitempty" json:"recurring_series_id,omitempty"`
	IsRecurring       bool   `bson:"is_recurring" json:"is_recurring"`
	OccurrenceNumber  int    `bson:"occurrence_number,omitempty" json:"occurrence_number,omitempty"` // 1-based within the series

	// Cancellation metadata, stamped when status becomes cancelled.
	CancellationPolicyID string     `bson:"cancellation_policy_id,omitempty" json:"cancellation_policy_id,omitempty"`
	CancelledAt          *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CancellationReason   string     `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	RefundAmount         float64    `bson:"refund_amount,omitempty" json:"refund_amount,omitempty"`
	RefundStatus         string     `bson:"refund_status,omitempty" json:"refund_status,omitempty"` // "pending" while a refund awaits processing

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BookingPet links one booking to one pet (many-to-many).
type BookingPet struct {
	BookingID string `bson:"booking_id" json:"booking_id"`
	PetID     string `bson:"pet_id" json:"pet_id"`
}

// ScheduledAt combines the booking's date and time-of-day into a single
// timestamp in the given location.
func (b *Booking) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.ScheduledDate+" "+b.ScheduledTime, loc)
}

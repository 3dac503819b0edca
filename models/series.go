package models

import "time"

// Frequency values accepted on a recurring series.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// RecurringSeries represents a pet owner's standing instruction to generate
// bookings with a provider on a schedule.
type RecurringSeries struct {
	ID         string   `bson:"id" json:"id"`                   // Unique series identifier (UUID)
	OwnerID    string   `bson:"owner_id" json:"owner_id"`       // Pet owner who created the series
	ProviderID string   `bson:"provider_id" json:"provider_id"` // Provider the series books with
	PetIDs     []string `bson:"pet_ids" json:"pet_ids"`         // Pets covered by every occurrence

	Frequency     string `bson:"frequency" json:"frequency"`           // "daily", "weekly" or "monthly"
	IntervalCount int    `bson:"interval_count" json:"interval_count"` // Multiplies the base period (every N days/weeks/months)
	DaysOfWeek    []int  `bson:"days_of_week,omitempty" json:"days_of_week,omitempty"` // Weekday indices 0-6, weekly frequency only
	TimeOfDay     string `bson:"time_of_day" json:"time_of_day"`       // "HH:MM"

	StartDate      string `bson:"start_date" json:"start_date"`                             // Inclusive, "2006-01-02"
	EndDate        string `bson:"end_date,omitempty" json:"end_date,omitempty"`             // Optional inclusive upper bound
	MaxOccurrences int    `bson:"max_occurrences,omitempty" json:"max_occurrences,omitempty"` // Optional cap on total bookings ever generated

	OccurrencesCreated int  `bson:"occurrences_created" json:"occurrences_created"` // Monotonic counter, never exceeds MaxOccurrences
	IsActive           bool `bson:"is_active" json:"is_active"`

	// Booking template fields, copied onto every generated occurrence.
	ServiceName         string  `bson:"service_name" json:"service_name"`
	DurationMinutes     int     `bson:"duration_minutes" json:"duration_minutes"`
	PickupAddress       string  `bson:"pickup_address" json:"pickup_address"`
	PickupLat           float64 `bson:"pickup_lat" json:"pickup_lat"`
	PickupLng           float64 `bson:"pickup_lng" json:"pickup_lng"`
	SpecialInstructions string  `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	TotalAmount         float64 `bson:"total_amount" json:"total_amount"` // Price per occurrence

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Occurrence is one generated slot in a series: a calendar date plus its
// 1-based position in the overall sequence.
type Occurrence struct {
	Date             string `json:"date"` // "2006-01-02", no time component
	OccurrenceNumber int    `json:"occurrence_number"`
}

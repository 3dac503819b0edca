package bookingRepo

import (
	"time"

	"pawcare/models"
)

// CancelStamp carries the fields written onto a booking when it is cancelled.
type CancelStamp struct {
	CancelledAt  time.Time
	Reason       string
	RefundAmount float64
	RefundStatus string // empty means no refund record
}

// BookingRepository defines data access for bookings and their pet links.
type BookingRepository interface {
	Create(booking *models.Booking) error
	CreateMany(bookings []models.Booking) error
	GetByID(bookingID string) (*models.Booking, error)
	ListForSeries(seriesID string) ([]models.Booking, error)
	ListForOwner(ownerID string, limit int64) ([]models.Booking, error)
	ListForProvider(providerID string, limit int64) ([]models.Booking, error)

	// CountFutureForSeries counts the series' bookings scheduled on or after
	// the given date, regardless of status.
	CountFutureForSeries(seriesID, fromDate string) (int, error)

	// UpdateStatusFrom moves a booking's status, but only if its current
	// status is one of allowedFrom. Returns false when the filter matched
	// nothing, which the caller treats as an illegal transition.
	UpdateStatusFrom(bookingID string, allowedFrom []string, to string) (bool, error)

	// Cancel stamps a single booking cancelled.
	Cancel(bookingID string, stamp CancelStamp) error

	// CancelForSeries cancels the series' pending and accepted bookings,
	// restricted to dates >= fromDate when futureOnly is set. Returns the
	// number of bookings cancelled.
	CancelForSeries(seriesID string, futureOnly bool, fromDate string, stamp CancelStamp) (int64, error)

	// LinkPets records booking-to-pet associations.
	LinkPets(links []models.BookingPet) error
	PetsForBooking(bookingID string) ([]string, error)

	// DeleteForSeries removes the series' bookings outright. Compensating
	// step only, never part of normal operation.
	DeleteForSeries(seriesID string) error
}

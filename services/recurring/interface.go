package recurring

import (
	"time"

	bookingRepo "pawcare/database/repository/booking"
	seriesRepo "pawcare/database/repository/series"
	"pawcare/models"
	"pawcare/services/notification"
)

const (
	// InitialBatchSize is the number of occurrences materialized when a
	// series is created.
	InitialBatchSize = 10

	// RollingWindowSize is the number of future bookings the top-up job
	// keeps available per active series.
	RollingWindowSize = 10
)

// SeriesDetail bundles a series with its generated bookings.
type SeriesDetail struct {
	Series   models.RecurringSeries `json:"series"`
	Bookings []models.Booking       `json:"bookings"`
}

// TopUpResult reports how many bookings a top-up run generated.
type TopUpResult struct {
	Created int `json:"created"`
}

// RecurringService manages recurring booking series: initial occurrence
// materialization, periodic top-up, and series-wide cancellation.
type RecurringService interface {
	// CreateSeries persists the series and its initial batch of bookings.
	// Returns the assigned series id.
	CreateSeries(series *models.RecurringSeries) (string, error)

	// TopUpSeries generates bookings until the series has a rolling window
	// of future occurrences again.
	TopUpSeries(seriesID string) (*TopUpResult, error)

	// CancelSeries cancels the series' pending and accepted bookings (all of
	// them, or only future ones) and deactivates the series.
	CancelSeries(seriesID string, futureOnly bool) error

	GetSeriesDetail(seriesID string) (*SeriesDetail, error)
}

// DefaultRecurringService implements RecurringService.
type DefaultRecurringService struct {
	SeriesRepo  seriesRepo.SeriesRepository
	BookingRepo bookingRepo.BookingRepository
	Notifier    notification.NotificationService

	// Now supplies the clock; defaults to time.Now. Tests override it.
	Now func() time.Time
}

func (svc *DefaultRecurringService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

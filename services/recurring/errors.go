package recurring

import "errors"

var (
	// ErrSeriesNotFound indicates the referenced series does not exist.
	ErrSeriesNotFound = errors.New("recurring series not found")

	// ErrSeriesInactive indicates the series has been cancelled and no
	// longer generates bookings.
	ErrSeriesInactive = errors.New("recurring series is not active")

	// ErrNoOccurrences indicates the series definition yields no bookable
	// dates before its bounds or the safety horizon.
	ErrNoOccurrences = errors.New("no valid occurrences could be generated")
)

package seriesRepo

import "pawcare/models"

// SeriesRepository defines data access for recurring booking series.
type SeriesRepository interface {
	Create(series *models.RecurringSeries) error
	GetByID(seriesID string) (*models.RecurringSeries, error)
	ListActive() ([]models.RecurringSeries, error)
	IncrementOccurrences(seriesID string, by int) error
	SetInactive(seriesID string) error
	// Delete removes a series record outright. Used only as the
	// compensating step when occurrence creation fails part-way.
	Delete(seriesID string) error
}

package recurring

import (
	"fmt"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/models"
	"pawcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seriesCancelReason is stamped onto every booking cancelled as part of a
// series-wide cancellation.
const seriesCancelReason = "Recurring series cancelled"

// CreateSeries persists the series record, materializes the initial batch of
// bookings, and links the series' pets to each booking. There is no
// transaction spanning these writes; a failure after the series insert
// triggers a compensating delete so no orphan series persists.
func (svc *DefaultRecurringService) CreateSeries(series *models.RecurringSeries) (string, error) {
	logger := utils.GetLogger()

	series.ID = uuid.New().String()
	series.OccurrencesCreated = 0
	series.IsActive = true
	series.CreatedAt = svc.now()

	if err := svc.SeriesRepo.Create(series); err != nil {
		return "", fmt.Errorf("failed to create recurring series: %w", err)
	}

	occurrences, err := GenerateOccurrences(series, InitialBatchSize, svc.now())
	if err != nil {
		svc.rollbackSeries(series.ID, false)
		return "", fmt.Errorf("failed to generate occurrences: %w", err)
	}
	if len(occurrences) == 0 {
		svc.rollbackSeries(series.ID, false)
		return "", ErrNoOccurrences
	}

	bookings := svc.buildBookings(series, occurrences)
	if err := svc.BookingRepo.CreateMany(bookings); err != nil {
		svc.rollbackSeries(series.ID, false)
		return "", fmt.Errorf("failed to create bookings for series: %w", err)
	}

	links := make([]models.BookingPet, 0, len(bookings)*len(series.PetIDs))
	for i := range bookings {
		for _, petID := range series.PetIDs {
			links = append(links, models.BookingPet{BookingID: bookings[i].ID, PetID: petID})
		}
	}
	if err := svc.BookingRepo.LinkPets(links); err != nil {
		svc.rollbackSeries(series.ID, true)
		return "", fmt.Errorf("failed to link pets to bookings: %w", err)
	}

	if err := svc.SeriesRepo.IncrementOccurrences(series.ID, len(occurrences)); err != nil {
		logger.Error("failed to advance series occurrence counter",
			zap.String("seriesID", series.ID), zap.Error(err))
	}

	svc.notifySeriesCreated(series, len(occurrences))

	return series.ID, nil
}

// rollbackSeries is the compensating step of the create saga. Failures here
// are logged and swallowed: a crash mid-rollback can still leave an orphan
// series behind.
func (svc *DefaultRecurringService) rollbackSeries(seriesID string, withBookings bool) {
	logger := utils.GetLogger()
	if withBookings {
		if err := svc.BookingRepo.DeleteForSeries(seriesID); err != nil {
			logger.Error("rollback: failed to delete series bookings",
				zap.String("seriesID", seriesID), zap.Error(err))
		}
	}
	if err := svc.SeriesRepo.Delete(seriesID); err != nil {
		logger.Error("rollback: failed to delete series",
			zap.String("seriesID", seriesID), zap.Error(err))
	}
}

func (svc *DefaultRecurringService) buildBookings(series *models.RecurringSeries, occurrences []models.Occurrence) []models.Booking {
	now := svc.now()
	bookings := make([]models.Booking, 0, len(occurrences))
	for _, occ := range occurrences {
		bookings = append(bookings, models.Booking{
			ID:                  uuid.New().String(),
			OwnerID:             series.OwnerID,
			ProviderID:          series.ProviderID,
			ServiceName:         series.ServiceName,
			Status:              models.BookingStatusPending,
			ScheduledDate:       occ.Date,
			ScheduledTime:       series.TimeOfDay,
			DurationMins:        series.DurationMinutes,
			TotalAmount:         series.TotalAmount,
			PetCount:            len(series.PetIDs),
			PickupAddress:       series.PickupAddress,
			PickupLat:           series.PickupLat,
			PickupLng:           series.PickupLng,
			SpecialInstructions: series.SpecialInstructions,
			RecurringSeriesID:   series.ID,
			IsRecurring:         true,
			OccurrenceNumber:    occ.OccurrenceNumber,
			CreatedAt:           now,
		})
	}
	return bookings
}

func (svc *DefaultRecurringService) notifySeriesCreated(series *models.RecurringSeries, count int) {
	logger := utils.GetLogger()
	title := "Recurring booking created"
	message := fmt.Sprintf("A %s recurring booking for %s was set up with %d upcoming visits.",
		series.Frequency, series.ServiceName, count)

	if err := svc.Notifier.NotifyUser(series.OwnerID, models.NotificationRecurringCreated, title, message); err != nil {
		logger.Warn("failed to notify owner of new series", zap.String("seriesID", series.ID), zap.Error(err))
	}
	if err := svc.Notifier.NotifyProvider(series.ProviderID, models.NotificationRecurringCreated, title, message); err != nil {
		logger.Warn("failed to notify provider of new series", zap.String("seriesID", series.ID), zap.Error(err))
	}
}

// TopUpSeries keeps a rolling window of future bookings for an active
// series. The number of bookings to generate comes from counting existing
// future bookings, while occurrence numbering continues from the series'
// persisted counter; the two measures can legitimately disagree (e.g. after
// cancellations) and are kept separate on purpose.
func (svc *DefaultRecurringService) TopUpSeries(seriesID string) (*TopUpResult, error) {
	series, err := svc.SeriesRepo.GetByID(seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to load series %s: %w", seriesID, err)
	}
	if series == nil {
		return nil, ErrSeriesNotFound
	}
	if !series.IsActive {
		return nil, ErrSeriesInactive
	}

	now := svc.now()
	today := now.Format(dateLayout)
	existing, err := svc.BookingRepo.CountFutureForSeries(seriesID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count future bookings for series %s: %w", seriesID, err)
	}
	if existing >= RollingWindowSize {
		return &TopUpResult{Created: 0}, nil
	}

	occurrences, err := GenerateOccurrences(series, RollingWindowSize-existing, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate occurrences for series %s: %w", seriesID, err)
	}
	if len(occurrences) == 0 {
		return &TopUpResult{Created: 0}, nil
	}

	bookings := svc.buildBookings(series, occurrences)
	if err := svc.BookingRepo.CreateMany(bookings); err != nil {
		return nil, fmt.Errorf("failed to insert top-up bookings for series %s: %w", seriesID, err)
	}
	if err := svc.SeriesRepo.IncrementOccurrences(seriesID, len(occurrences)); err != nil {
		return nil, fmt.Errorf("failed to advance occurrence counter for series %s: %w", seriesID, err)
	}

	return &TopUpResult{Created: len(occurrences)}, nil
}

// CancelSeries cancels the series' pending and accepted bookings and
// deactivates the series so the top-up job skips it from now on.
func (svc *DefaultRecurringService) CancelSeries(seriesID string, futureOnly bool) error {
	series, err := svc.SeriesRepo.GetByID(seriesID)
	if err != nil {
		return fmt.Errorf("failed to load series %s: %w", seriesID, err)
	}
	if series == nil {
		return ErrSeriesNotFound
	}

	now := svc.now()
	stamp := bookingRepo.CancelStamp{
		CancelledAt: now,
		Reason:      seriesCancelReason,
	}
	cancelled, err := svc.BookingRepo.CancelForSeries(seriesID, futureOnly, now.Format(dateLayout), stamp)
	if err != nil {
		return fmt.Errorf("failed to cancel recurring series: %w", err)
	}
	if err := svc.SeriesRepo.SetInactive(seriesID); err != nil {
		return fmt.Errorf("failed to deactivate series %s: %w", seriesID, err)
	}

	utils.GetLogger().Info("recurring series cancelled",
		zap.String("seriesID", seriesID),
		zap.Bool("futureOnly", futureOnly),
		zap.Int64("bookingsCancelled", cancelled))
	return nil
}

// GetSeriesDetail returns a series together with all its bookings, ordered
// by scheduled date.
func (svc *DefaultRecurringService) GetSeriesDetail(seriesID string) (*SeriesDetail, error) {
	series, err := svc.SeriesRepo.GetByID(seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to load series %s: %w", seriesID, err)
	}
	if series == nil {
		return nil, ErrSeriesNotFound
	}
	bookings, err := svc.BookingRepo.ListForSeries(seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for series %s: %w", seriesID, err)
	}
	return &SeriesDetail{Series: *series, Bookings: bookings}, nil
}

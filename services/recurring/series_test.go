package recurring

import (
	"errors"
	"testing"
	"time"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeriesRepo struct {
	series  map[string]*models.RecurringSeries
	deleted []string
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{series: make(map[string]*models.RecurringSeries)}
}

func (r *fakeSeriesRepo) Create(s *models.RecurringSeries) error {
	cp := *s
	r.series[s.ID] = &cp
	return nil
}

func (r *fakeSeriesRepo) GetByID(id string) (*models.RecurringSeries, error) {
	s, ok := r.series[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSeriesRepo) ListActive() ([]models.RecurringSeries, error) {
	var out []models.RecurringSeries
	for _, s := range r.series {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSeriesRepo) IncrementOccurrences(id string, by int) error {
	s, ok := r.series[id]
	if !ok {
		return errors.New("series not found")
	}
	s.OccurrencesCreated += by
	return nil
}

func (r *fakeSeriesRepo) SetInactive(id string) error {
	if s, ok := r.series[id]; ok {
		s.IsActive = false
	}
	return nil
}

func (r *fakeSeriesRepo) Delete(id string) error {
	delete(r.series, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	bookingRepo.BookingRepository

	bookings       []models.Booking
	links          []models.BookingPet
	failCreateMany bool
	failLinkPets   bool
}

func (r *fakeBookingRepo) CreateMany(bs []models.Booking) error {
	if r.failCreateMany {
		return errors.New("bulk insert failed")
	}
	r.bookings = append(r.bookings, bs...)
	return nil
}

func (r *fakeBookingRepo) LinkPets(links []models.BookingPet) error {
	if r.failLinkPets {
		return errors.New("link insert failed")
	}
	r.links = append(r.links, links...)
	return nil
}

func (r *fakeBookingRepo) CountFutureForSeries(seriesID, fromDate string) (int, error) {
	count := 0
	for _, b := range r.bookings {
		if b.RecurringSeriesID == seriesID && b.ScheduledDate >= fromDate {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) ListForSeries(seriesID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.RecurringSeriesID == seriesID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CancelForSeries(seriesID string, futureOnly bool, fromDate string, stamp bookingRepo.CancelStamp) (int64, error) {
	var cancelled int64
	for i := range r.bookings {
		b := &r.bookings[i]
		if b.RecurringSeriesID != seriesID {
			continue
		}
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusAccepted {
			continue
		}
		if futureOnly && b.ScheduledDate < fromDate {
			continue
		}
		b.Status = models.BookingStatusCancelled
		at := stamp.CancelledAt
		b.CancelledAt = &at
		b.CancellationReason = stamp.Reason
		cancelled++
	}
	return cancelled, nil
}

func (r *fakeBookingRepo) DeleteForSeries(seriesID string) error {
	var kept []models.Booking
	for _, b := range r.bookings {
		if b.RecurringSeriesID != seriesID {
			kept = append(kept, b)
		}
	}
	r.bookings = kept
	return nil
}

type notified struct {
	recipient string
	notifType string
}

type fakeNotifier struct {
	users     []notified
	providers []notified
}

func (n *fakeNotifier) NotifyUser(userID, notifType, title, message string) error {
	n.users = append(n.users, notified{userID, notifType})
	return nil
}

func (n *fakeNotifier) NotifyProvider(providerID, notifType, title, message string) error {
	n.providers = append(n.providers, notified{providerID, notifType})
	return nil
}

func (n *fakeNotifier) Feed(string, int64) ([]models.Notification, error) { return nil, nil }
func (n *fakeNotifier) MarkRead(string) error                             { return nil }
func (n *fakeNotifier) UnreadCount(string) (int64, error)                 { return 0, nil }

func newTestService() (*DefaultRecurringService, *fakeSeriesRepo, *fakeBookingRepo, *fakeNotifier) {
	series := newFakeSeriesRepo()
	bookings := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	svc := &DefaultRecurringService{
		SeriesRepo:  series,
		BookingRepo: bookings,
		Notifier:    notifier,
		Now:         func() time.Time { return testNow },
	}
	return svc, series, bookings, notifier
}

func weeklySeries() *models.RecurringSeries {
	return &models.RecurringSeries{
		OwnerID:         "owner-1",
		ProviderID:      "provider-1",
		PetIDs:          []string{"pet-1", "pet-2"},
		Frequency:       models.FrequencyWeekly,
		IntervalCount:   1,
		DaysOfWeek:      []int{1, 3}, // Monday, Wednesday
		TimeOfDay:       "09:00",
		StartDate:       "2026-09-01",
		MaxOccurrences:  4,
		ServiceName:     "Dog Walking",
		DurationMinutes: 30,
		TotalAmount:     25,
	}
}

func TestCreateSeriesRoundTrip(t *testing.T) {
	svc, seriesStore, bookings, notifier := newTestService()

	seriesID, err := svc.CreateSeries(weeklySeries())
	require.NoError(t, err)
	require.NotEmpty(t, seriesID)

	stored, err := seriesStore.GetByID(seriesID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
	assert.Equal(t, 4, stored.OccurrencesCreated)

	require.Len(t, bookings.bookings, 4)
	expectedDates := []string{"2026-09-02", "2026-09-07", "2026-09-09", "2026-09-14"}
	for i, b := range bookings.bookings {
		assert.Equal(t, expectedDates[i], b.ScheduledDate)
		assert.Equal(t, i+1, b.OccurrenceNumber)
		assert.Equal(t, models.BookingStatusPending, b.Status)
		assert.True(t, b.IsRecurring)
		assert.Equal(t, seriesID, b.RecurringSeriesID)
		assert.Equal(t, "09:00", b.ScheduledTime)
		assert.Equal(t, 2, b.PetCount)
		assert.Equal(t, 25.0, b.TotalAmount)
	}

	// Two pets linked to each of the four bookings.
	require.Len(t, bookings.links, 8)
	perBooking := make(map[string]int)
	for _, l := range bookings.links {
		perBooking[l.BookingID]++
	}
	for _, b := range bookings.bookings {
		assert.Equal(t, 2, perBooking[b.ID])
	}

	require.Len(t, notifier.users, 1)
	assert.Equal(t, models.NotificationRecurringCreated, notifier.users[0].notifType)
	require.Len(t, notifier.providers, 1)
	assert.Equal(t, "provider-1", notifier.providers[0].recipient)
}

func TestCreateSeriesNoOccurrencesRollsBack(t *testing.T) {
	svc, seriesStore, bookings, _ := newTestService()

	series := weeklySeries()
	series.StartDate = "2027-02-01" // beyond the safety horizon

	_, err := svc.CreateSeries(series)
	require.ErrorIs(t, err, ErrNoOccurrences)
	assert.Empty(t, seriesStore.series)
	assert.Len(t, seriesStore.deleted, 1)
	assert.Empty(t, bookings.bookings)
}

func TestCreateSeriesBookingInsertFailureRollsBack(t *testing.T) {
	svc, seriesStore, bookings, notifier := newTestService()
	bookings.failCreateMany = true

	_, err := svc.CreateSeries(weeklySeries())
	require.Error(t, err)
	assert.Empty(t, seriesStore.series)
	assert.Len(t, seriesStore.deleted, 1)
	assert.Empty(t, notifier.users)
}

func TestCreateSeriesLinkFailureRollsBackBookings(t *testing.T) {
	svc, seriesStore, bookings, _ := newTestService()
	bookings.failLinkPets = true

	_, err := svc.CreateSeries(weeklySeries())
	require.Error(t, err)
	assert.Empty(t, seriesStore.series)
	assert.Empty(t, bookings.bookings)
}

func TestTopUpSeriesNoOpWhenWindowFull(t *testing.T) {
	svc, seriesStore, bookings, _ := newTestService()

	s := weeklySeries()
	s.ID = "series-1"
	s.IsActive = true
	s.MaxOccurrences = 0
	s.OccurrencesCreated = 10
	require.NoError(t, seriesStore.Create(s))

	for i := 0; i < 10; i++ {
		bookings.bookings = append(bookings.bookings, models.Booking{
			RecurringSeriesID: "series-1",
			ScheduledDate:     "2026-10-01",
			Status:            models.BookingStatusPending,
		})
	}

	result, err := svc.TopUpSeries("series-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Len(t, bookings.bookings, 10)
	assert.Equal(t, 10, seriesStore.series["series-1"].OccurrencesCreated)
}

func TestTopUpSeriesGeneratesShortfall(t *testing.T) {
	svc, seriesStore, bookings, _ := newTestService()

	s := &models.RecurringSeries{
		ID:                 "series-2",
		OwnerID:            "owner-1",
		ProviderID:         "provider-1",
		PetIDs:             []string{"pet-1"},
		Frequency:          models.FrequencyDaily,
		IntervalCount:      1,
		TimeOfDay:          "08:00",
		StartDate:          "2026-08-28",
		OccurrencesCreated: 4,
		IsActive:           true,
		ServiceName:        "Dog Walking",
		TotalAmount:        20,
	}
	require.NoError(t, seriesStore.Create(s))

	// Four bookings exist but only two are in the future.
	bookings.bookings = []models.Booking{
		{RecurringSeriesID: "series-2", ScheduledDate: "2026-08-28", OccurrenceNumber: 1},
		{RecurringSeriesID: "series-2", ScheduledDate: "2026-08-29", OccurrenceNumber: 2},
		{RecurringSeriesID: "series-2", ScheduledDate: "2026-09-01", OccurrenceNumber: 3},
		{RecurringSeriesID: "series-2", ScheduledDate: "2026-09-02", OccurrenceNumber: 4},
	}

	result, err := svc.TopUpSeries("series-2")
	require.NoError(t, err)
	assert.Equal(t, 8, result.Created)

	created := bookings.bookings[4:]
	require.Len(t, created, 8)
	assert.Equal(t, "2026-09-01", created[0].ScheduledDate)
	for i, b := range created {
		assert.Equal(t, 5+i, b.OccurrenceNumber)
	}
	assert.Equal(t, 12, seriesStore.series["series-2"].OccurrencesCreated)
}

func TestTopUpSeriesMissingAndInactive(t *testing.T) {
	svc, seriesStore, _, _ := newTestService()

	_, err := svc.TopUpSeries("nope")
	assert.ErrorIs(t, err, ErrSeriesNotFound)

	s := weeklySeries()
	s.ID = "series-3"
	s.IsActive = false
	require.NoError(t, seriesStore.Create(s))

	_, err = svc.TopUpSeries("series-3")
	assert.ErrorIs(t, err, ErrSeriesInactive)
}

func TestCancelSeriesFutureOnly(t *testing.T) {
	svc, seriesStore, bookings, _ := newTestService()

	s := weeklySeries()
	s.ID = "series-4"
	s.IsActive = true
	require.NoError(t, seriesStore.Create(s))

	bookings.bookings = []models.Booking{
		{ID: "b1", RecurringSeriesID: "series-4", ScheduledDate: "2026-08-20", Status: models.BookingStatusCompleted},
		{ID: "b2", RecurringSeriesID: "series-4", ScheduledDate: "2026-08-25", Status: models.BookingStatusPending},
		{ID: "b3", RecurringSeriesID: "series-4", ScheduledDate: "2026-09-05", Status: models.BookingStatusPending},
		{ID: "b4", RecurringSeriesID: "series-4", ScheduledDate: "2026-09-10", Status: models.BookingStatusAccepted},
	}

	require.NoError(t, svc.CancelSeries("series-4", true))

	assert.Equal(t, models.BookingStatusCompleted, bookings.bookings[0].Status)
	assert.Equal(t, models.BookingStatusPending, bookings.bookings[1].Status) // past, future-only
	assert.Equal(t, models.BookingStatusCancelled, bookings.bookings[2].Status)
	assert.Equal(t, models.BookingStatusCancelled, bookings.bookings[3].Status)
	assert.False(t, seriesStore.series["series-4"].IsActive)
}

func TestCancelSeriesAll(t *testing.T) {
	svc, seriesStore, bookings, _ := newTestService()

	s := weeklySeries()
	s.ID = "series-5"
	s.IsActive = true
	require.NoError(t, seriesStore.Create(s))

	bookings.bookings = []models.Booking{
		{ID: "b1", RecurringSeriesID: "series-5", ScheduledDate: "2026-08-25", Status: models.BookingStatusPending},
		{ID: "b2", RecurringSeriesID: "series-5", ScheduledDate: "2026-09-05", Status: models.BookingStatusAccepted},
	}

	require.NoError(t, svc.CancelSeries("series-5", false))

	for _, b := range bookings.bookings {
		assert.Equal(t, models.BookingStatusCancelled, b.Status)
		assert.Equal(t, "Recurring series cancelled", b.CancellationReason)
	}
	assert.False(t, seriesStore.series["series-5"].IsActive)
}

package booking

import (
	"testing"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookingRepo.BookingRepository

	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) UpdateStatusFrom(id string, allowedFrom []string, to string) (bool, error) {
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	for _, from := range allowedFrom {
		if b.Status == from {
			b.Status = to
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	types []string
}

func (n *fakeNotifier) NotifyUser(userID, notifType, title, message string) error {
	n.types = append(n.types, notifType)
	return nil
}

func (n *fakeNotifier) NotifyProvider(providerID, notifType, title, message string) error {
	return nil
}

func (n *fakeNotifier) Feed(string, int64) ([]models.Notification, error) { return nil, nil }
func (n *fakeNotifier) MarkRead(string) error                             { return nil }
func (n *fakeNotifier) UnreadCount(string) (int64, error)                 { return 0, nil }

type fakeEnqueuer struct {
	seriesIDs []string
}

func (e *fakeEnqueuer) EnqueueTopUp(seriesID string) error {
	e.seriesIDs = append(e.seriesIDs, seriesID)
	return nil
}

func TestLifecycleTransitions(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingStatusPending})
	svc := &DefaultBookingService{Repo: repo, Notifier: &fakeNotifier{}}

	require.NoError(t, svc.Accept("b1"))
	assert.Equal(t, models.BookingStatusAccepted, repo.bookings["b1"].Status)

	require.NoError(t, svc.Start("b1"))
	assert.Equal(t, models.BookingStatusInProgress, repo.bookings["b1"].Status)

	require.NoError(t, svc.Complete("b1"))
	assert.Equal(t, models.BookingStatusCompleted, repo.bookings["b1"].Status)
}

func TestTransitionsRejectWrongStatus(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "pending", Status: models.BookingStatusPending},
		&models.Booking{ID: "done", Status: models.BookingStatusCompleted},
	)
	svc := &DefaultBookingService{Repo: repo, Notifier: &fakeNotifier{}}

	// Can't start or complete straight from pending.
	assert.ErrorIs(t, svc.Start("pending"), ErrInvalidTransition)
	assert.ErrorIs(t, svc.Complete("pending"), ErrInvalidTransition)

	// Completed is terminal.
	assert.ErrorIs(t, svc.Accept("done"), ErrInvalidTransition)
	assert.ErrorIs(t, svc.Start("done"), ErrInvalidTransition)
}

func TestAcceptNotifiesOwner(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", OwnerID: "owner-1", Status: models.BookingStatusPending})
	notifier := &fakeNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	require.NoError(t, svc.Accept("b1"))
	require.Len(t, notifier.types, 1)
	assert.Equal(t, models.NotificationBookingAccepted, notifier.types[0])
}

func TestCompleteEnqueuesTopUpForRecurring(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{
		ID:                "b1",
		OwnerID:           "owner-1",
		Status:            models.BookingStatusInProgress,
		RecurringSeriesID: "series-1",
		IsRecurring:       true,
	})
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultBookingService{Repo: repo, Notifier: &fakeNotifier{}, TopUp: enqueuer}

	require.NoError(t, svc.Complete("b1"))
	assert.Equal(t, []string{"series-1"}, enqueuer.seriesIDs)
}

func TestCompleteSkipsTopUpForOneOff(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingStatusInProgress})
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultBookingService{Repo: repo, Notifier: &fakeNotifier{}, TopUp: enqueuer}

	require.NoError(t, svc.Complete("b1"))
	assert.Empty(t, enqueuer.seriesIDs)
}

func TestGetByIDMissing(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Notifier: &fakeNotifier{}}
	_, err := svc.GetByID("nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

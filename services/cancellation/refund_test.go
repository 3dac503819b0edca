package cancellation

import (
	"errors"
	"testing"
	"time"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is a fixed Tuesday morning so "hours until" arithmetic stays exact.
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookingRepo.BookingRepository

	bookings   map[string]*models.Booking
	cancelled  map[string]bookingRepo.CancelStamp
	failGet    bool
	failCancel bool
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings:  make(map[string]*models.Booking),
		cancelled: make(map[string]bookingRepo.CancelStamp),
	}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if r.failGet {
		return nil, errors.New("database unavailable")
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Cancel(id string, stamp bookingRepo.CancelStamp) error {
	if r.failCancel {
		return errors.New("update failed")
	}
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = models.BookingStatusCancelled
	at := stamp.CancelledAt
	b.CancelledAt = &at
	b.CancellationReason = stamp.Reason
	b.RefundAmount = stamp.RefundAmount
	b.RefundStatus = stamp.RefundStatus
	r.cancelled[id] = stamp
	return nil
}

type fakePolicyRepo struct {
	byID   map[string]*models.CancellationPolicy
	byName map[string]*models.CancellationPolicy
}

func newFakePolicyRepo(policies ...*models.CancellationPolicy) *fakePolicyRepo {
	r := &fakePolicyRepo{
		byID:   make(map[string]*models.CancellationPolicy),
		byName: make(map[string]*models.CancellationPolicy),
	}
	for _, p := range policies {
		r.byID[p.ID] = p
		r.byName[p.Name] = p
	}
	return r
}

func (r *fakePolicyRepo) GetByID(id string) (*models.CancellationPolicy, error) {
	return r.byID[id], nil
}

func (r *fakePolicyRepo) GetByName(name string) (*models.CancellationPolicy, error) {
	return r.byName[name], nil
}

func (r *fakePolicyRepo) List() ([]models.CancellationPolicy, error) { return nil, nil }

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

func newTestService(bookings *fakeBookingRepo, policies *fakePolicyRepo) (*DefaultCancellationService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	svc := &DefaultCancellationService{
		BookingRepo: bookings,
		PolicyRepo:  policies,
		Notifier:    notifier,
		Now:         func() time.Time { return testNow },
	}
	return svc, notifier
}

func pendingBooking(id string, hoursAhead float64) *models.Booking {
	at := testNow.Add(time.Duration(hoursAhead * float64(time.Hour)))
	return &models.Booking{
		ID:            id,
		OwnerID:       "owner-1",
		ProviderID:    "provider-1",
		ServiceName:   "Dog Walking",
		Status:        models.BookingStatusPending,
		ScheduledDate: at.Format("2006-01-02"),
		ScheduledTime: at.Format("15:04"),
		TotalAmount:   100,
	}
}

func flexiblePolicy() *models.CancellationPolicy {
	return &models.CancellationPolicy{
		ID:               "policy-flex",
		Name:             models.DefaultPolicyName,
		HoursBefore:      24,
		RefundPercentage: 100,
	}
}

func TestCalculateRefundAheadOfNotice(t *testing.T) {
	booking := pendingBooking("b1", 48)
	booking.CancellationPolicyID = "policy-strict"
	strict := &models.CancellationPolicy{
		ID: "policy-strict", Name: "Strict", HoursBefore: 24, RefundPercentage: 80,
	}
	svc, _ := newTestService(newFakeBookingRepo(booking), newFakePolicyRepo(strict))

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.True(t, result.CanCancel)
	assert.Equal(t, 80.0, result.RefundPercentage)
	assert.Equal(t, 80.0, result.RefundAmount)
	assert.Equal(t, "Strict", result.PolicyName)
}

func TestCalculateRefundInsideNotice(t *testing.T) {
	booking := pendingBooking("b1", 10)
	booking.CancellationPolicyID = "policy-flex"
	svc, _ := newTestService(newFakeBookingRepo(booking), newFakePolicyRepo(flexiblePolicy()))

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.True(t, result.CanCancel)
	assert.Zero(t, result.RefundPercentage)
	assert.Zero(t, result.RefundAmount)
}

func TestCalculateRefundExactThresholdRefunds(t *testing.T) {
	booking := pendingBooking("b1", 24)
	booking.CancellationPolicyID = "policy-flex"
	svc, _ := newTestService(newFakeBookingRepo(booking), newFakePolicyRepo(flexiblePolicy()))

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.True(t, result.CanCancel)
	assert.Equal(t, 100.0, result.RefundPercentage)
}

func TestCalculateRefundTerminalStates(t *testing.T) {
	cancelled := pendingBooking("b1", 48)
	cancelled.Status = models.BookingStatusCancelled
	completed := pendingBooking("b2", 48)
	completed.Status = models.BookingStatusCompleted
	svc, _ := newTestService(newFakeBookingRepo(cancelled, completed), newFakePolicyRepo(flexiblePolicy()))

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.False(t, result.CanCancel)
	assert.Equal(t, "This booking is already cancelled", result.Reason)

	result, err = svc.CalculateRefund("b2")
	require.NoError(t, err)
	assert.False(t, result.CanCancel)
	assert.Equal(t, "Cannot cancel a completed booking", result.Reason)
}

func TestCalculateRefundPastBooking(t *testing.T) {
	booking := pendingBooking("b1", -2)
	svc, _ := newTestService(newFakeBookingRepo(booking), newFakePolicyRepo(flexiblePolicy()))

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.False(t, result.CanCancel)
	assert.Equal(t, "Cannot cancel a past booking", result.Reason)
}

func TestCalculateRefundFallsBackToDefaultPolicy(t *testing.T) {
	booking := pendingBooking("b1", 48)
	booking.CancellationPolicyID = "gone"
	svc, _ := newTestService(newFakeBookingRepo(booking), newFakePolicyRepo(flexiblePolicy()))

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.True(t, result.CanCancel)
	assert.Equal(t, models.DefaultPolicyName, result.PolicyName)
	assert.Equal(t, 100.0, result.RefundAmount)
}

func TestCalculateRefundNoPolicyFailsOpen(t *testing.T) {
	booking := pendingBooking("b1", 48)
	svc, _ := newTestService(newFakeBookingRepo(booking), newFakePolicyRepo())

	result, err := svc.CalculateRefund("b1")
	require.NoError(t, err)
	assert.True(t, result.CanCancel)
	assert.Zero(t, result.RefundPercentage)
	assert.Zero(t, result.RefundAmount)
	assert.Equal(t, "No Policy", result.PolicyName)
	assert.Equal(t, "No cancellation policy found", result.Reason)
}

func TestCalculateRefundMissingBooking(t *testing.T) {
	svc, _ := newTestService(newFakeBookingRepo(), newFakePolicyRepo(flexiblePolicy()))

	result, err := svc.CalculateRefund("nope")
	require.Error(t, err)
	assert.Nil(t, result)
}

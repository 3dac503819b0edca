package booking

import (
	"errors"
	"fmt"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/models"
	"pawcare/services/notification"
	"pawcare/utils"

	"go.uber.org/zap"
)

// ErrInvalidTransition indicates the booking is not in a status the
// requested transition is allowed from.
var ErrInvalidTransition = errors.New("booking status does not allow this transition")

// ErrBookingNotFound indicates the referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// TopUpEnqueuer schedules a recurring-series top-up to run in the background.
type TopUpEnqueuer interface {
	EnqueueTopUp(seriesID string) error
}

// BookingService drives a booking through its forward-only lifecycle:
// pending -> accepted -> in_progress -> completed. Cancellation is handled
// by the cancellation service.
type BookingService interface {
	GetByID(bookingID string) (*models.Booking, error)
	ListForOwner(ownerID string, limit int64) ([]models.Booking, error)
	ListForProvider(providerID string, limit int64) ([]models.Booking, error)
	Accept(bookingID string) error
	Start(bookingID string) error
	Complete(bookingID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
	TopUp    TopUpEnqueuer // optional
}

func (svc *DefaultBookingService) GetByID(bookingID string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (svc *DefaultBookingService) ListForOwner(ownerID string, limit int64) ([]models.Booking, error) {
	return svc.Repo.ListForOwner(ownerID, limit)
}

func (svc *DefaultBookingService) ListForProvider(providerID string, limit int64) ([]models.Booking, error) {
	return svc.Repo.ListForProvider(providerID, limit)
}

// Accept moves a pending booking to accepted and tells the owner.
func (svc *DefaultBookingService) Accept(bookingID string) error {
	if err := svc.transition(bookingID, []string{models.BookingStatusPending}, models.BookingStatusAccepted); err != nil {
		return err
	}
	svc.notifyOwner(bookingID, models.NotificationBookingAccepted, "Booking accepted",
		"Your booking has been accepted by the provider.")
	return nil
}

// Start moves an accepted booking to in_progress.
func (svc *DefaultBookingService) Start(bookingID string) error {
	return svc.transition(bookingID, []string{models.BookingStatusAccepted}, models.BookingStatusInProgress)
}

// Complete moves an in-progress booking to completed. For occurrences of a
// recurring series a top-up is enqueued so the series keeps a rolling window
// of future bookings.
func (svc *DefaultBookingService) Complete(bookingID string) error {
	booking, err := svc.GetByID(bookingID)
	if err != nil {
		return err
	}
	if err := svc.transition(bookingID, []string{models.BookingStatusInProgress}, models.BookingStatusCompleted); err != nil {
		return err
	}

	svc.notifyOwner(bookingID, models.NotificationBookingCompleted, "Booking completed",
		fmt.Sprintf("Your %s booking on %s is complete.", booking.ServiceName, booking.ScheduledDate))

	if booking.RecurringSeriesID != "" && svc.TopUp != nil {
		if err := svc.TopUp.EnqueueTopUp(booking.RecurringSeriesID); err != nil {
			utils.GetLogger().Warn("failed to enqueue series top-up",
				zap.String("seriesID", booking.RecurringSeriesID), zap.Error(err))
		}
	}
	return nil
}

func (svc *DefaultBookingService) transition(bookingID string, allowedFrom []string, to string) error {
	moved, err := svc.Repo.UpdateStatusFrom(bookingID, allowedFrom, to)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	if !moved {
		return fmt.Errorf("%w: booking %s to %s", ErrInvalidTransition, bookingID, to)
	}
	return nil
}

func (svc *DefaultBookingService) notifyOwner(bookingID, notifType, title, message string) {
	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil || booking == nil {
		return
	}
	if err := svc.Notifier.NotifyUser(booking.OwnerID, notifType, title, message); err != nil {
		utils.GetLogger().Warn("failed to notify owner", zap.String("bookingID", bookingID), zap.Error(err))
	}
}

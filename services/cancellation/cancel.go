package cancellation

import (
	"fmt"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/models"
	"pawcare/utils"

	"go.uber.org/zap"
)

// CancelWithRefund runs the refund evaluation and, when cancellation is
// permitted, updates the booking and notifies both parties. All failure
// modes come back as a structured outcome; nothing is raised to the caller.
func (svc *DefaultCancellationService) CancelWithRefund(bookingID, reason string) *CancelOutcome {
	logger := utils.GetLogger()

	result, err := svc.CalculateRefund(bookingID)
	if err != nil {
		logger.Error("refund calculation failed", zap.String("bookingID", bookingID), zap.Error(err))
		return &CancelOutcome{Success: false, Message: "Failed to calculate refund"}
	}
	if !result.CanCancel {
		return &CancelOutcome{Success: false, Message: result.Reason}
	}

	booking, err := svc.BookingRepo.GetByID(bookingID)
	if err != nil || booking == nil {
		logger.Error("failed to reload booking for cancellation", zap.String("bookingID", bookingID), zap.Error(err))
		return &CancelOutcome{Success: false, Message: "Failed to cancel booking"}
	}

	stamp := bookingRepo.CancelStamp{
		CancelledAt:  svc.now(),
		Reason:       reason,
		RefundAmount: result.RefundAmount,
	}
	if result.RefundAmount > 0 {
		stamp.RefundStatus = "pending"
	}
	if err := svc.BookingRepo.Cancel(bookingID, stamp); err != nil {
		logger.Error("failed to cancel booking", zap.String("bookingID", bookingID), zap.Error(err))
		return &CancelOutcome{Success: false, Message: "Failed to cancel booking"}
	}

	svc.notifyCancelled(booking, result)

	message := "Booking cancelled"
	if result.RefundAmount > 0 {
		message = fmt.Sprintf("Booking cancelled. A refund of %.2f (%.0f%%) will be processed.",
			result.RefundAmount, result.RefundPercentage)
	}
	return &CancelOutcome{Success: true, Message: message, RefundAmount: result.RefundAmount}
}

func (svc *DefaultCancellationService) notifyCancelled(booking *models.Booking, result *models.CancellationResult) {
	logger := utils.GetLogger()
	title := "Booking cancelled"

	ownerMsg := fmt.Sprintf("Your %s booking on %s has been cancelled.", booking.ServiceName, booking.ScheduledDate)
	if result.RefundAmount > 0 {
		ownerMsg = fmt.Sprintf("Your %s booking on %s has been cancelled. A refund of %.2f is being processed.",
			booking.ServiceName, booking.ScheduledDate, result.RefundAmount)
	}
	providerMsg := fmt.Sprintf("The %s booking on %s has been cancelled by the owner.",
		booking.ServiceName, booking.ScheduledDate)

	if err := svc.Notifier.NotifyUser(booking.OwnerID, models.NotificationBookingCancelled, title, ownerMsg); err != nil {
		logger.Warn("failed to notify owner of cancellation", zap.String("bookingID", booking.ID), zap.Error(err))
	}
	if err := svc.Notifier.NotifyProvider(booking.ProviderID, models.NotificationBookingCancelled, title, providerMsg); err != nil {
		logger.Warn("failed to notify provider of cancellation", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

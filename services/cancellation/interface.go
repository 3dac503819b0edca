package cancellation

import (
	"time"

	bookingRepo "pawcare/database/repository/booking"
	policyRepo "pawcare/database/repository/policy"
	"pawcare/models"
	"pawcare/services/notification"
)

// CancelOutcome is the structured result of a cancellation attempt. Business
// refusals (too late, already cancelled, ...) surface here as Success=false
// with the evaluator's reason; only infrastructure failures are logged and
// converted to generic messages.
type CancelOutcome struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	RefundAmount float64 `json:"refundAmount"`
}

// CancellationService evaluates cancel-eligibility and refunds for bookings.
type CancellationService interface {
	// CalculateRefund computes eligibility and refund for the booking at the
	// current moment. A nil result with a non-nil error means the lookup
	// itself failed; a populated result with CanCancel=false is a business
	// refusal.
	CalculateRefund(bookingID string) (*models.CancellationResult, error)

	// CancelWithRefund cancels the booking, stamps refund metadata, and
	// notifies both parties.
	CancelWithRefund(bookingID, reason string) *CancelOutcome
}

// DefaultCancellationService implements CancellationService.
type DefaultCancellationService struct {
	BookingRepo bookingRepo.BookingRepository
	PolicyRepo  policyRepo.PolicyRepository
	Notifier    notification.NotificationService

	// Now supplies the clock; defaults to time.Now. Tests override it.
	Now func() time.Time
}

func (svc *DefaultCancellationService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

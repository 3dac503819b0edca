package cancellation

import (
	"fmt"

	"pawcare/models"
)

// CalculateRefund loads the booking and its policy and decides whether it
// can be cancelled right now, and at what refund. The refund rule is a
// binary threshold: cancelling at least HoursBefore hours ahead refunds
// RefundPercentage, anything later refunds nothing.
func (svc *DefaultCancellationService) CalculateRefund(bookingID string) (*models.CancellationResult, error) {
	booking, err := svc.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return &models.CancellationResult{
			Reason: "This booking is already cancelled",
		}, nil
	case models.BookingStatusCompleted:
		return &models.CancellationResult{
			Reason: "Cannot cancel a completed booking",
		}, nil
	}

	scheduledAt, err := booking.ScheduledAt(svc.now().Location())
	if err != nil {
		return nil, fmt.Errorf("invalid schedule on booking %s: %w", bookingID, err)
	}
	hoursUntil := scheduledAt.Sub(svc.now()).Hours()
	if hoursUntil < 0 {
		return &models.CancellationResult{
			Reason: "Cannot cancel a past booking",
		}, nil
	}

	policy, err := svc.resolvePolicy(booking)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		// Fail open: cancellation stays allowed, the refund does not.
		return &models.CancellationResult{
			CanCancel:  true,
			Reason:     "No cancellation policy found",
			PolicyName: "No Policy",
		}, nil
	}

	result := &models.CancellationResult{
		CanCancel:  true,
		PolicyName: policy.Name,
	}
	if hoursUntil >= policy.HoursBefore {
		result.RefundPercentage = policy.RefundPercentage
		result.RefundAmount = booking.TotalAmount * policy.RefundPercentage / 100
		result.Reason = fmt.Sprintf(
			"Cancelling %.1f hours ahead meets the %s policy's %.0f-hour notice, refunding %.0f%%",
			hoursUntil, policy.Name, policy.HoursBefore, policy.RefundPercentage)
	} else {
		result.Reason = fmt.Sprintf(
			"Cancelling %.1f hours ahead is within the %s policy's %.0f-hour window, no refund applies",
			hoursUntil, policy.Name, policy.HoursBefore)
	}
	return result, nil
}

// resolvePolicy returns the booking's linked policy, falling back to the
// default "Flexible" policy, or nil when neither exists.
func (svc *DefaultCancellationService) resolvePolicy(booking *models.Booking) (*models.CancellationPolicy, error) {
	if booking.CancellationPolicyID != "" {
		policy, err := svc.PolicyRepo.GetByID(booking.CancellationPolicyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load cancellation policy %s: %w", booking.CancellationPolicyID, err)
		}
		if policy != nil {
			return policy, nil
		}
	}
	policy, err := svc.PolicyRepo.GetByName(models.DefaultPolicyName)
	if err != nil {
		return nil, fmt.Errorf("failed to load default cancellation policy: %w", err)
	}
	return policy, nil
}

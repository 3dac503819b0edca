package models

// DefaultPolicyName is the policy used when a booking carries no policy of
// its own.
const DefaultPolicyName = "Flexible"

// CancellationPolicy is a read-only refund rule. A booking that is cancelled
// at least HoursBefore hours ahead of its scheduled time refunds
// RefundPercentage of its total amount; later cancellations refund nothing.
type CancellationPolicy struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	HoursBefore      float64 `bson:"hours_before" json:"hours_before"`
	RefundPercentage float64 `bson:"refund_percentage" json:"refund_percentage"` // 0-100
	Description      string  `bson:"description,omitempty" json:"description,omitempty"`
}

// CancellationResult is the outcome of a refund evaluation. It is computed on
// demand and never persisted.
type CancellationResult struct {
	CanCancel        bool    `json:"canCancel"`
	RefundPercentage float64 `json:"refundPercentage"`
	RefundAmount     float64 `json:"refundAmount"`
	Reason           string  `json:"reason"`
	PolicyName       string  `json:"policyName"`
}

package policyRepo

import "pawcare/models"

// PolicyRepository defines read-only access to cancellation policies.
type PolicyRepository interface {
	// GetByID returns nil, nil when no policy with that id exists.
	GetByID(policyID string) (*models.CancellationPolicy, error)
	// GetByName returns nil, nil when no policy with that name exists.
	GetByName(name string) (*models.CancellationPolicy, error)
	List() ([]models.CancellationPolicy, error)
}

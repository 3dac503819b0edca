package providerRepo

import "pawcare/models"

// SearchQuery narrows a provider search. Zero values mean "don't filter".
type SearchQuery struct {
	ServiceType string // one of the models.Service* values
	City        string
	NameQuery   string // case-insensitive substring match on the provider name
}

// ProviderRepository defines data access for providers.
type ProviderRepository interface {
	Create(provider *models.Provider) error
	GetByID(providerID string) (*models.Provider, error)
	// Search returns active providers matching the query, best rated first.
	Search(q SearchQuery) ([]models.Provider, error)
	// List returns all providers, including inactive ones. Admin use.
	List() ([]models.Provider, error)
	SetActive(providerID string, active bool) error
}

package petRepo

import "pawcare/models"

// PetRepository defines data access for pets.
type PetRepository interface {
	Create(pet *models.Pet) error
	GetByID(petID string) (*models.Pet, error)
	ListForOwner(ownerID string) ([]models.Pet, error)
}

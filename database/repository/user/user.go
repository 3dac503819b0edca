package userRepo

import "pawcare/models"

// UserRepository defines data access for pet-owner accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(userID string) (*models.User, error)
	List() ([]models.User, error)
}

package handlers

import (
	"net/http"
	"time"

	petRepo "pawcare/database/repository/pet"
	userRepo "pawcare/database/repository/user"
	"pawcare/models"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler exposes owner and pet records.
type UserHandler struct {
	Users userRepo.UserRepository
	Pets  petRepo.PetRepository
}

func NewUserHandler(users userRepo.UserRepository, pets petRepo.PetRepository) *UserHandler {
	return &UserHandler{Users: users, Pets: pets}
}

// RegisterUserHandler creates an owner account.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if u.Name == "" || u.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "name and email are required")
		return
	}
	u.ID = uuid.New().String()
	u.IsActive = true
	u.CreatedAt = time.Now()
	if err := h.Users.Create(&u); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GetUserByIDHandler returns one owner account.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	u, err := h.Users.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user", err.Error())
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreatePetHandler adds a pet to an owner's account.
func (h *UserHandler) CreatePetHandler(c *gin.Context) {
	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if p.OwnerID == "" || p.Name == "" || p.Species == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "owner_id, name and species are required")
		return
	}
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	if err := h.Pets.Create(&p); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create pet", err.Error())
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPetsHandler lists an owner's pets.
func (h *UserHandler) ListPetsHandler(c *gin.Context) {
	pets, err := h.Pets.ListForOwner(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list pets", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

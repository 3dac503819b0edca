package handlers

import (
	"errors"
	"net/http"

	providerRepo "pawcare/database/repository/provider"
	"pawcare/models"
	"pawcare/services/provider"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes the provider directory.
type ProviderHandler struct {
	Svc provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Svc: svc}
}

// RegisterProviderHandler creates a provider record.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if p.Name == "" || len(p.ServiceTypes) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "name and at least one service type are required")
		return
	}
	if err := h.Svc.Register(&p); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register provider", err.Error())
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProviderByIDHandler returns one provider.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, provider.ErrProviderNotFound) {
			utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchProvidersHandler returns active providers matching the query
// parameters service, city and q.
func (h *ProviderHandler) SearchProvidersHandler(c *gin.Context) {
	q := providerRepo.SearchQuery{
		ServiceType: c.Query("service"),
		City:        c.Query("city"),
		NameQuery:   c.Query("q"),
	}
	providers, err := h.Svc.Search(q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

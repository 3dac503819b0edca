package handlers

import (
	"net/http"

	policyRepo "pawcare/database/repository/policy"
	userRepo "pawcare/database/repository/user"
	"pawcare/services/provider"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes support workflows: directory oversight and policy
// inspection.
type AdminHandler struct {
	Providers provider.ProviderService
	Users     userRepo.UserRepository
	Policies  policyRepo.PolicyRepository
}

func NewAdminHandler(providers provider.ProviderService, users userRepo.UserRepository, policies policyRepo.PolicyRepository) *AdminHandler {
	return &AdminHandler{Providers: providers, Users: users, Policies: policies}
}

// ListProvidersHandler lists all providers, inactive ones included.
func (h *AdminHandler) ListProvidersHandler(c *gin.Context) {
	providers, err := h.Providers.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// SetProviderActiveHandler activates or deactivates a provider.
func (h *AdminHandler) SetProviderActiveHandler(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := h.Providers.SetActive(c.Param("id"), req.Active); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUsersHandler lists all owner accounts.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListPoliciesHandler lists the configured cancellation policies.
func (h *AdminHandler) ListPoliciesHandler(c *gin.Context) {
	policies, err := h.Policies.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list policies", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"policies": policies})
}

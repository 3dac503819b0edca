package handlers

import (
	"net/http"

	"pawcare/services/cancellation"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
)

// CancellationHandler exposes refund preview and booking cancellation.
type CancellationHandler struct {
	Svc cancellation.CancellationService
}

func NewCancellationHandler(svc cancellation.CancellationService) *CancellationHandler {
	return &CancellationHandler{Svc: svc}
}

// RefundPreviewHandler computes what cancelling the booking right now would
// refund, without changing anything.
func (h *CancellationHandler) RefundPreviewHandler(c *gin.Context) {
	result, err := h.Svc.CalculateRefund(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to calculate refund", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBookingHandler cancels a booking with a mandatory free-text reason.
func (h *CancellationHandler) CancelBookingHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if req.Reason == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "a cancellation reason is required")
		return
	}

	outcome := h.Svc.CancelWithRefund(c.Param("id"), req.Reason)
	if !outcome.Success {
		c.JSON(http.StatusConflict, outcome)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

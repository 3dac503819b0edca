package handlers

import (
	"errors"
	"net/http"
	"time"

	"pawcare/models"
	"pawcare/services/recurring"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecurringHandler exposes the recurring-booking endpoints.
type RecurringHandler struct {
	Svc recurring.RecurringService
}

func NewRecurringHandler(svc recurring.RecurringService) *RecurringHandler {
	return &RecurringHandler{Svc: svc}
}

type createSeriesRequest struct {
	OwnerID    string   `json:"owner_id" binding:"required"`
	ProviderID string   `json:"provider_id" binding:"required"`
	PetIDs     []string `json:"pet_ids"`

	Frequency     string `json:"frequency" binding:"required"`
	IntervalCount int    `json:"interval_count"`
	DaysOfWeek    []int  `json:"days_of_week"`
	TimeOfDay     string `json:"time_of_day" binding:"required"`

	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date"`
	MaxOccurrences int    `json:"max_occurrences"`

	ServiceName         string  `json:"service_name" binding:"required"`
	DurationMinutes     int     `json:"duration_minutes"`
	PickupAddress       string  `json:"pickup_address"`
	PickupLat           float64 `json:"pickup_lat"`
	PickupLng           float64 `json:"pickup_lng"`
	SpecialInstructions string  `json:"special_instructions"`
	TotalAmount         float64 `json:"total_amount"`
}

// validate enforces what the engine itself does not: a weekly series without
// weekdays or a series without pets would otherwise surface as a generic
// "no valid occurrences" failure.
func (req *createSeriesRequest) validate() string {
	if len(req.PetIDs) == 0 {
		return "at least one pet is required"
	}
	switch req.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		return "frequency must be daily, weekly or monthly"
	}
	if req.Frequency == models.FrequencyWeekly && len(req.DaysOfWeek) == 0 {
		return "weekly series require at least one day of the week"
	}
	for _, d := range req.DaysOfWeek {
		if d < 0 || d > 6 {
			return "days_of_week values must be between 0 and 6"
		}
	}
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return "start_date must be formatted as YYYY-MM-DD"
	}
	if req.EndDate != "" {
		if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
			return "end_date must be formatted as YYYY-MM-DD"
		}
	}
	return ""
}

// CreateSeriesHandler creates a recurring series and its initial bookings.
func (h *RecurringHandler) CreateSeriesHandler(c *gin.Context) {
	var req createSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid recurring series", msg)
		return
	}

	series := &models.RecurringSeries{
		OwnerID:             req.OwnerID,
		ProviderID:          req.ProviderID,
		PetIDs:              req.PetIDs,
		Frequency:           req.Frequency,
		IntervalCount:       req.IntervalCount,
		DaysOfWeek:          req.DaysOfWeek,
		TimeOfDay:           req.TimeOfDay,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		MaxOccurrences:      req.MaxOccurrences,
		ServiceName:         req.ServiceName,
		DurationMinutes:     req.DurationMinutes,
		PickupAddress:       req.PickupAddress,
		PickupLat:           req.PickupLat,
		PickupLng:           req.PickupLng,
		SpecialInstructions: req.SpecialInstructions,
		TotalAmount:         req.TotalAmount,
	}

	seriesID, err := h.Svc.CreateSeries(series)
	if err != nil {
		if errors.Is(err, recurring.ErrNoOccurrences) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "no valid occurrences", err.Error())
			return
		}
		utils.GetLogger().Error("failed to create recurring series", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create recurring series", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "seriesId": seriesID})
}

// GetSeriesHandler returns a series with its bookings.
func (h *RecurringHandler) GetSeriesHandler(c *gin.Context) {
	detail, err := h.Svc.GetSeriesDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, recurring.ErrSeriesNotFound) {
			utils.JSONError(c, http.StatusNotFound, "series not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load series", err.Error())
		return
	}
	c.JSON(http.StatusOK, detail)
}

// TopUpSeriesHandler triggers an immediate top-up for one series.
func (h *RecurringHandler) TopUpSeriesHandler(c *gin.Context) {
	result, err := h.Svc.TopUpSeries(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, recurring.ErrSeriesNotFound):
			utils.JSONError(c, http.StatusNotFound, "series not found", err.Error())
		case errors.Is(err, recurring.ErrSeriesInactive):
			utils.JSONError(c, http.StatusConflict, "series not active", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to top up series", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "created": result.Created})
}

// CancelSeriesHandler cancels a series. With future_only=true only bookings
// from today onward are cancelled.
func (h *RecurringHandler) CancelSeriesHandler(c *gin.Context) {
	futureOnly := c.DefaultQuery("future_only", "true") != "false"

	if err := h.Svc.CancelSeries(c.Param("id"), futureOnly); err != nil {
		if errors.Is(err, recurring.ErrSeriesNotFound) {
			utils.JSONError(c, http.StatusNotFound, "series not found", err.Error())
			return
		}
		utils.GetLogger().Error("failed to cancel recurring series", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to cancel recurring series"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recurring series cancelled"})
}

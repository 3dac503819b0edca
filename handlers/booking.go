package handlers

import (
	"errors"
	"net/http"
	"strconv"

	bookingRepo "pawcare/database/repository/booking"
	"pawcare/services/booking"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking lookups and lifecycle transitions.
type BookingHandler struct {
	Svc  booking.BookingService
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(svc booking.BookingService, repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Svc: svc, Repo: repo}
}

// GetBookingHandler returns one booking together with its linked pet ids.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking", err.Error())
		return
	}
	petIDs, err := h.Repo.PetsForBooking(b.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking pets", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "pet_ids": petIDs})
}

// ListBookingsHandler lists bookings for an owner or a provider.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	if ownerID := c.Query("owner_id"); ownerID != "" {
		bookings, err := h.Svc.ListForOwner(ownerID, limit)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}
	if providerID := c.Query("provider_id"); providerID != "" {
		bookings, err := h.Svc.ListForProvider(providerID, limit)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "invalid request", "owner_id or provider_id query parameter is required")
}

// AcceptBookingHandler moves a pending booking to accepted.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.Accept)
}

// StartBookingHandler moves an accepted booking to in_progress.
func (h *BookingHandler) StartBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.Start)
}

// CompleteBookingHandler moves an in-progress booking to completed.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	h.transition(c, h.Svc.Complete)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(string) error) {
	if err := fn(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Provider endpoints
	RegisterProviderHandler gin.HandlerFunc
	GetProviderByIDHandler  gin.HandlerFunc
	SearchProvidersHandler  gin.HandlerFunc

	// User and pet endpoints
	RegisterUserHandler gin.HandlerFunc
	GetUserByIDHandler  gin.HandlerFunc
	CreatePetHandler    gin.HandlerFunc
	ListPetsHandler     gin.HandlerFunc

	// Booking endpoints
	GetBookingHandler      gin.HandlerFunc
	ListBookingsHandler    gin.HandlerFunc
	AcceptBookingHandler   gin.HandlerFunc
	StartBookingHandler    gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc

	// Cancellation endpoints
	RefundPreviewHandler gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Recurring series endpoints
	CreateSeriesHandler  gin.HandlerFunc
	GetSeriesHandler     gin.HandlerFunc
	TopUpSeriesHandler   gin.HandlerFunc
	CancelSeriesHandler  gin.HandlerFunc

	// Notification endpoints
	NotificationFeedHandler gin.HandlerFunc
	MarkNotificationRead    gin.HandlerFunc
	UnreadCountHandler      gin.HandlerFunc

	// Admin endpoints
	AdminListProvidersHandler    gin.HandlerFunc
	AdminSetProviderActive       gin.HandlerFunc
	AdminListUsersHandler        gin.HandlerFunc
	AdminListPoliciesHandler     gin.HandlerFunc
	AdminSeriesDetailHandler     gin.HandlerFunc
}

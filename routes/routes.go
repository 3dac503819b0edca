package routes

import (
	"net/http"
	"time"

	"pawcare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterProviderRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRecurringRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pawcare"})
	})
}

// RegisterProviderRoutes registers the provider directory endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.RegisterProviderHandler)
		api.GET("/search", hb.SearchProvidersHandler)
		api.GET("/id/:id", hb.GetProviderByIDHandler)
	}
}

// RegisterUserRoutes registers owner and pet endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.GET("/id/:id/pets", hb.ListPetsHandler)
	}
	r.POST("/api/pets", hb.CreatePetHandler)
}

// RegisterBookingRoutes registers booking lookups, lifecycle transitions and
// cancellation.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("/:id/accept", hb.AcceptBookingHandler)
		api.POST("/:id/start", hb.StartBookingHandler)
		api.POST("/:id/complete", hb.CompleteBookingHandler)
		api.GET("/:id/refund-preview", hb.RefundPreviewHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterRecurringRoutes registers the recurring-series endpoints.
func RegisterRecurringRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/recurring")
	{
		api.POST("", hb.CreateSeriesHandler)
		api.GET("/:id", hb.GetSeriesHandler)
		api.POST("/:id/topup", hb.TopUpSeriesHandler)
		api.POST("/:id/cancel", hb.CancelSeriesHandler)
	}
}

// RegisterNotificationRoutes registers the in-app notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("/recipient/:recipientID", hb.NotificationFeedHandler)
		api.GET("/recipient/:recipientID/unread", hb.UnreadCountHandler)
		api.POST("/:id/read", hb.MarkNotificationRead)
	}
}

// RegisterAdminRoutes registers support workflows.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.GET("/providers", hb.AdminListProvidersHandler)
		api.PATCH("/providers/:id/active", hb.AdminSetProviderActive)
		api.GET("/users", hb.AdminListUsersHandler)
		api.GET("/policies", hb.AdminListPoliciesHandler)
		api.GET("/series/:id", hb.AdminSeriesDetailHandler)
	}
}

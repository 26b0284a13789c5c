package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"branchly/handlers"
	"branchly/middleware"
)

// RegisterAuthRoutes registers admin authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLoginHandler)
	}
}

// RegisterBranchRoutes registers branch management endpoints. Everything
// here requires admin authentication.
func RegisterBranchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/branches")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.CreateBranchHandler)
		api.GET("", hb.ListBranchesHandler)
		api.GET("/:id", hb.GetBranchHandler)
		api.PATCH("/:id", hb.UpdateBranchHandler)
		api.DELETE("/:id", hb.DeleteBranchHandler)

		// Reservation availability settings.
		api.GET("/:id/reservation-week", hb.GetReservationWeekHandler)
		api.PUT("/:id/reservation-week", hb.UpdateReservationWeekHandler)
		api.POST("/:id/reservation-week/validate", hb.ValidateReservationWeekHandler)
		api.GET("/:id/settings", hb.GetSettingsSnapshotHandler)
		api.PUT("/:id/enable", hb.EnableReservationsHandler)
		api.PUT("/:id/disable", hb.DisableReservationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Branchly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBranchRoutes(r, hb)
	RegisterHealthRoute(r)
}

package routes

import (
	"net/http"
	"time"

	"laundr/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking negotiation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.GET("", hb.ListBookings)
		api.POST("", hb.CreateBooking)
		api.POST("/:id/approve", hb.ApproveBooking)
		api.POST("/:id/decline", hb.DeclineBooking)
		api.POST("/:id/counter", hb.CounterBooking)
		api.POST("/:id/cancel", hb.CancelBooking)
	}
}

// RegisterTransactionRoutes sets up the money-movement endpoints behind the
// compliance guard.
func RegisterTransactionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/transactions")
	api.Use(hb.Compliance)
	{
		api.GET("", hb.ListTransactions)
		api.POST("/send", hb.SendLoad)
		api.POST("/request", hb.RequestLoad)
		api.POST("/swap", hb.SwapFunds)
		api.POST("/claim", hb.ClaimInvite)
	}
}

// RegisterProfileRoutes sets up the minimal profile collaborator endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/profiles")
	{
		api.GET("", hb.ListProfiles)
		api.POST("", hb.CreateProfile)
		api.GET("/:id", hb.GetProfile)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Laundr"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterTransactionRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
}

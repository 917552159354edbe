package routes

import (
	"net/http"
	"time"

	"devmitra/handlers"
	"devmitra/middleware"
	"devmitra/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the OTP login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/send-otp", hb.Auth.SendOTP)
		api.POST("/verify-otp", hb.Auth.VerifyOTP)
	}
}

// RegisterPujaRoutes registers the catalog and vendor qualification
// endpoints. Reads are public; writes are admin-only.
func RegisterPujaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pujas")
	{
		api.GET("", hb.Puja.ListActive)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireCapability(middleware.CapManageCatalog))
		protected.POST("", hb.Puja.Create)
		protected.PUT("/:id", hb.Puja.Update)
		protected.DELETE("/:id", hb.Puja.Deactivate)
	}

	vp := r.Group("/api/vendor-pujas")
	{
		vp.GET("/:vendorId", hb.Puja.ListForVendor)

		protected := vp.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireCapability(middleware.CapManageCatalog))
		protected.POST("", hb.Puja.AssignToVendor)
	}
}

// RegisterUserRoutes registers vendor and customer management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	vendors := r.Group("/api/vendors")
	{
		vendors.GET("", hb.User.ListVendors)

		protected := vendors.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireCapability(middleware.CapManageUsers))
		protected.POST("", hb.User.CreateVendor)
		protected.PATCH("/:id/approve", hb.User.ApproveVendor)
		protected.PATCH("/:id/block", hb.User.BlockVendor)
	}

	customers := r.Group("/api/customers")
	{
		customers.Use(middleware.JWTAuthMiddleware(), middleware.RequireCapability(middleware.CapManageUsers))
		customers.POST("", hb.User.CreateCustomer)
		customers.GET("", hb.User.ListCustomers)
	}
}

// RegisterAvailabilityRoutes registers the slot ledger endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:vendorId", hb.Availability.List)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireCapability(middleware.CapDeclareSlots))
		protected.POST("", hb.Availability.Declare)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", middleware.RequireCapability(middleware.CapCreateBooking), hb.Booking.Create)
		api.PATCH("/:id/assign", middleware.RequireCapability(middleware.CapAssignVendor), hb.Booking.AssignVendor)
		api.PATCH("/:id/accept", middleware.RequireCapability(middleware.CapActOnBooking), hb.Booking.Accept)
		api.PATCH("/:id/reject", middleware.RequireCapability(middleware.CapActOnBooking), hb.Booking.Reject)
		api.PATCH("/:id/cancel", middleware.RequireCapability(middleware.CapCancelBooking), hb.Booking.Cancel)
		api.GET("/customer/:customerId", middleware.RequireCapability(middleware.CapViewOwnBookings), hb.Booking.ListByCustomer)
		api.GET("/vendor/:vendorId", middleware.RequireCapability(middleware.CapViewVendorBookings), hb.Booking.ListByVendor)
	}
}

// RegisterPaymentRoutes registers the simulated payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/simulate", middleware.RequireCapability(middleware.CapSimulatePayment), hb.Payment.Simulate)
		api.GET("/booking/:bookingId", middleware.RequireCapability(middleware.CapViewPayments), hb.Payment.History)
	}
}

// RegisterHomeRoutes registers the home screen card endpoints. Reads are
// public; writes are admin-only.
func RegisterHomeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/home/cards")
	{
		api.GET("", hb.Home.ListActive)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireCapability(middleware.CapManageHomeCards))
		protected.POST("", hb.Home.Create)
		protected.PUT("/:id", hb.Home.Update)
		protected.DELETE("/:id", hb.Home.Deactivate)
	}
}

// RegisterStorageRoutes registers the media upload endpoints. Profile
// uploads are open to any authenticated user; puja and home card imagery is
// admin-only.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upload")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/profile", middleware.RequireCapability(middleware.CapUploadMedia), hb.Storage.UploadProfile)
		api.POST("/puja", middleware.RequireCapability(middleware.CapManageCatalog), hb.Storage.UploadPuja)
		api.POST("/home", middleware.RequireCapability(middleware.CapManageHomeCards), hb.Storage.UploadHome)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterPujaRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHomeRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}

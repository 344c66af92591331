package routes

import (
	"net/http"
	"time"

	"petshop/handlers"
	"petshop/middleware"
	"petshop/utils"

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
	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterPublicRoutes registers endpoints that need no authentication:
// the catalog, the shop page, the sale listings, availability and quoting.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/daycare", hb.ListDayCareOptionsHandler)
		api.GET("/shop", hb.GetShopInfoHandler)
		api.GET("/sale-pets", hb.ListSalePetsHandler)
		api.GET("/sale-pets/:id", hb.GetSalePetHandler)

		api.GET("/availability", hb.GetSlotsHandler)
		api.GET("/availability/check", hb.CheckSlotHandler)
		api.POST("/quote", middleware.OptionalAuthMiddleware(), hb.QuoteHandler)
	}
}

// RegisterBookingRoutes registers the appointment endpoints. Creation accepts
// guests, so authentication is optional there; everything that reads or
// mutates an existing appointment requires a session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", middleware.OptionalAuthMiddleware(), hb.CreateAppointmentHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.GET("", hb.ListMyAppointments)
		protected.GET("/:id", hb.GetAppointmentHandler)
		protected.PATCH("/:id", hb.UpdateAppointmentHandler)
		protected.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterUserRoutes registers account, pet-profile and notification endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteProfileHandler)
	}

	pets := r.Group("/api/pets")
	{
		pets.Use(middleware.JWTAuthUserMiddleware())
		pets.POST("", hb.CreatePetHandler)
		pets.GET("", hb.ListPetsHandler)
		pets.PUT("/:id", hb.UpdatePetHandler)
		pets.DELETE("/:id", hb.DeletePetHandler)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.Use(middleware.JWTAuthUserMiddleware())
		notifications.GET("", hb.ListNotificationsHandler)
		notifications.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLoginHandler)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/appointments", hb.ListByDateHandler)
		api.PATCH("/appointments/:id", hb.UpdateAppointmentHandler)
		api.DELETE("/appointments/:id", hb.CancelAppointmentHandler)

		api.POST("/services", hb.CreateServiceHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)
		api.PUT("/daycare/:type", hb.UpdateDayCareOptionHandler)

		api.GET("/settings", hb.GetSettingsHandler)
		api.PUT("/settings", hb.UpdateSettingsHandler)

		api.POST("/sale-pets", hb.CreateSalePetHandler)
		api.PUT("/sale-pets/:id", hb.UpdateSalePetHandler)
		api.DELETE("/sale-pets/:id", hb.DeleteSalePetHandler)

		api.PUT("/shop", hb.UpdateShopInfoHandler)
	}
}

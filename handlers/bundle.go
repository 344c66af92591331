package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Availability and booking endpoints.
	GetSlotsHandler          gin.HandlerFunc
	CheckSlotHandler         gin.HandlerFunc
	QuoteHandler             gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	ListMyAppointments       gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler       gin.HandlerFunc
	GetServiceHandler         gin.HandlerFunc
	ListDayCareOptionsHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	DeleteProfileHandler    gin.HandlerFunc

	// Pet endpoints.
	CreatePetHandler    gin.HandlerFunc
	ListPetsHandler     gin.HandlerFunc
	UpdatePetHandler    gin.HandlerFunc
	DeletePetHandler    gin.HandlerFunc
	ListSalePetsHandler gin.HandlerFunc
	GetSalePetHandler   gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Shop endpoints.
	GetShopInfoHandler gin.HandlerFunc

	// Admin endpoints.
	AdminLoginHandler          gin.HandlerFunc
	ListByDateHandler          gin.HandlerFunc
	CreateServiceHandler       gin.HandlerFunc
	UpdateServiceHandler       gin.HandlerFunc
	DeleteServiceHandler       gin.HandlerFunc
	UpdateDayCareOptionHandler gin.HandlerFunc
	GetSettingsHandler         gin.HandlerFunc
	UpdateSettingsHandler      gin.HandlerFunc
	CreateSalePetHandler       gin.HandlerFunc
	UpdateSalePetHandler       gin.HandlerFunc
	DeleteSalePetHandler       gin.HandlerFunc
	UpdateShopInfoHandler      gin.HandlerFunc
}

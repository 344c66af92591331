package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petshop/config"
	"petshop/cron"
	"petshop/database"
	appointmentRepoPkg "petshop/database/repository/appointment"
	catalogRepoPkg "petshop/database/repository/catalog"
	notificationRepoPkg "petshop/database/repository/notification"
	petRepoPkg "petshop/database/repository/pet"
	settingsRepoPkg "petshop/database/repository/settings"
	shopRepoPkg "petshop/database/repository/shop"
	userRepoPkg "petshop/database/repository/user"
	"petshop/handlers"
	"petshop/middleware"
	"petshop/routes"
	"petshop/services/booking"
	"petshop/services/catalog"
	"petshop/services/notification"
	"petshop/services/pet"
	"petshop/services/shop"
	"petshop/services/tasks"
	"petshop/services/user"
	"petshop/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	setRepo := settingsRepoPkg.NewMongoSettingsRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	ptRepo := petRepoPkg.NewMongoPetRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	shpRepo := shopRepoPkg.NewMongoShopRepo()

	// services.
	catalogService := catalog.NewDefaultCatalogService(
		catRepo, setRepo, utils.GetCacheClient(), config.AppConfig.DefaultSlotCapacity)
	if err := catalogService.Seed(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}

	userService := user.NewDefaultUserService(usrRepo)
	notificationService := notification.NewDefaultNotificationService(notifRepo)
	petService := pet.NewDefaultPetService(ptRepo)
	shopService := shop.NewDefaultShopService(shpRepo)
	reminderQueue := tasks.NewReminderQueue()
	defer reminderQueue.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:        apptRepo,
		Catalog:     catalogService,
		Users:       usrRepo,
		Notifier:    notificationService,
		Reminders:   reminderQueue,
		OpeningHour: config.AppConfig.OpeningHour,
		ClosingHour: config.AppConfig.ClosingHour,
	}

	// Reminder delivery worker.
	cron.InitReminderWorker(notificationService)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, userService, logger)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	petHandler := handlers.NewPetHandler(petService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	shopHandler := handlers.NewShopHandler(shopService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetSlotsHandler:          bookingHandler.GetSlotsHandler,
		CheckSlotHandler:         bookingHandler.CheckSlotHandler,
		QuoteHandler:             bookingHandler.QuoteHandler,
		CreateAppointmentHandler: bookingHandler.CreateAppointmentHandler,
		GetAppointmentHandler:    bookingHandler.GetAppointmentHandler,
		ListMyAppointments:       bookingHandler.ListMyAppointmentsHandler,
		UpdateAppointmentHandler: bookingHandler.UpdateAppointmentHandler,
		CancelAppointmentHandler: bookingHandler.CancelAppointmentHandler,

		ListServicesHandler:       catalogHandler.ListServicesHandler,
		GetServiceHandler:         catalogHandler.GetServiceHandler,
		ListDayCareOptionsHandler: catalogHandler.ListDayCareOptionsHandler,

		RegisterUserHandler:     userHandler.RegisterHandler,
		AuthenticateUserHandler: userHandler.LoginHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		DeleteProfileHandler:    userHandler.DeleteProfileHandler,

		CreatePetHandler:    petHandler.CreatePetHandler,
		ListPetsHandler:     petHandler.ListPetsHandler,
		UpdatePetHandler:    petHandler.UpdatePetHandler,
		DeletePetHandler:    petHandler.DeletePetHandler,
		ListSalePetsHandler: petHandler.ListSalePetsHandler,
		GetSalePetHandler:   petHandler.GetSalePetHandler,

		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,

		GetShopInfoHandler: shopHandler.GetShopInfoHandler,

		AdminLoginHandler:          userHandler.AdminLoginHandler,
		ListByDateHandler:          bookingHandler.ListByDateHandler,
		CreateServiceHandler:       catalogHandler.CreateServiceHandler,
		UpdateServiceHandler:       catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler:       catalogHandler.DeleteServiceHandler,
		UpdateDayCareOptionHandler: catalogHandler.UpdateDayCareOptionHandler,
		GetSettingsHandler:         catalogHandler.GetSettingsHandler,
		UpdateSettingsHandler:      catalogHandler.UpdateSettingsHandler,
		CreateSalePetHandler:       petHandler.CreateSalePetHandler,
		UpdateSalePetHandler:       petHandler.UpdateSalePetHandler,
		DeleteSalePetHandler:       petHandler.DeleteSalePetHandler,
		UpdateShopInfoHandler:      shopHandler.UpdateShopInfoHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

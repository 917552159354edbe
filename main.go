package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devmitra/config"
	"devmitra/database"
	availabilityRepoPkg "devmitra/database/repository/availability"
	bookingRepoPkg "devmitra/database/repository/booking"
	homecardRepoPkg "devmitra/database/repository/homecard"
	pujaRepoPkg "devmitra/database/repository/puja"
	userRepoPkg "devmitra/database/repository/user"
	"devmitra/handlers"
	"devmitra/middleware"
	"devmitra/routes"
	authService "devmitra/services/auth"
	bookingService "devmitra/services/booking"
	homeService "devmitra/services/home"
	pujaService "devmitra/services/puja"
	storageService "devmitra/services/storage"
	userService "devmitra/services/user"
	"devmitra/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	utils.InitOTPCache()

	cloudinarySvc, err := storageService.NewCloudinaryStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	pujaRepo := pujaRepoPkg.NewMongoPujaRepo()
	vendorPujaRepo := pujaRepoPkg.NewMongoVendorPujaRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := bookingRepoPkg.NewMongoPaymentRepo()
	homecardRepo := homecardRepoPkg.NewMongoHomeCardRepo()

	// SMS delivery: fall back to logging OTPs when no gateway key is set.
	var sms authService.SMSSender
	if config.AppConfig.TwoFactorAPIKey != "" {
		sms = authService.NewTwoFactorSender(config.AppConfig.TwoFactorAPIKey, config.AppConfig.AndroidAppHash)
	} else {
		logger.Warn("no 2Factor API key configured, OTPs will be logged instead of sent")
		sms = &authService.LogSender{Logger: logger}
	}

	// Services.
	authSvc := &authService.DefaultAuthService{
		Repo:     userRepo,
		SMS:      sms,
		Throttle: utils.GetOTPCacheClient(),
		Logger:   logger,
	}
	pujaSvc := &pujaService.DefaultPujaService{
		Repo:        pujaRepo,
		VendorPujas: vendorPujaRepo,
		Cache:       utils.GetCacheClient(),
		Logger:      logger,
	}
	userSvc := &userService.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	availabilitySvc := &bookingService.DefaultAvailabilityService{
		Repo:   availabilityRepo,
		Logger: logger,
	}
	bookingSvc := &bookingService.DefaultBookingService{
		Repo:   bookingRepo,
		Logger: logger,
	}
	paymentSvc := &bookingService.DefaultPaymentService{
		Bookings: bookingRepo,
		Payments: paymentRepo,
		Logger:   logger,
	}
	homeSvc := &homeService.DefaultHomeService{
		Repo:   homecardRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authSvc),
		Booking:      handlers.NewBookingHandler(bookingSvc),
		Payment:      handlers.NewPaymentHandler(paymentSvc),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Puja:         handlers.NewPujaHandler(pujaSvc),
		User:         handlers.NewUserHandler(userSvc),
		Home:         handlers.NewHomeHandler(homeSvc),
		Storage:      handlers.NewStorageHandler(cloudinarySvc),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Server listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("failed to disconnect MongoDB: %v", err)
	}
	logger.Info("Server exited")
}

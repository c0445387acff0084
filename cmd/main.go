package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/jeebendu/glassy-property-hunter-97/internal/app"
	"github.com/jeebendu/glassy-property-hunter-97/internal/catalog"
	"github.com/jeebendu/glassy-property-hunter-97/internal/config"
	"github.com/jeebendu/glassy-property-hunter-97/internal/controllers"
	"github.com/jeebendu/glassy-property-hunter-97/internal/middleware"
	"github.com/jeebendu/glassy-property-hunter-97/internal/repositories"
	"github.com/jeebendu/glassy-property-hunter-97/internal/routes"
	"github.com/jeebendu/glassy-property-hunter-97/internal/services"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

const appName = "property-hunter-api"

func main() {
	utils.InitLogger(appName)
	cfg := config.LoadConfig(appName)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	challengeRepo := repositories.NewOtpChallengeRepository(application.DB)
	tokenRepo := repositories.NewTokenRepository(application.DB)
	listingRepo := repositories.NewListingRepository(application.DB)
	rateLimitRepo := repositories.NewRateLimitRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, cfg)
	jwtService := services.NewJWTService(cfg, tokenRepo)
	mailer := services.NewSendGridMailer(cfg)

	var smsSender services.SMSSender
	if cfg.SMSCopyEnabled {
		smsSender = services.NewTwilioSMSSender(cfg)
	}

	authService := services.NewAuthService(
		cfg,
		userRepo,
		challengeRepo,
		jwtService,
		rateLimiterService,
		mailer,
		smsSender,
	)

	listingService := services.NewListingService(listingRepo)
	catalogService := catalog.NewService(catalog.SeedProperties())
	cleanupService := services.NewCleanupService(tokenRepo, challengeRepo, rateLimitRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService, cfg)
	catalogController := controllers.NewCatalogController(catalogService)
	listingController := controllers.NewListingController(listingService)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")

	// Public auth endpoints
	router.HandleFunc(routes.AuthSendOtp, authController.SendOtp).Methods("POST")
	router.HandleFunc(routes.AuthLogin, authController.Login).Methods("POST")
	router.HandleFunc(routes.AuthGoogle, authController.GoogleLogin).Methods("POST")
	router.HandleFunc(routes.AuthRefresh, authController.Refresh).Methods("POST")
	router.HandleFunc(routes.AuthRegister, authController.Register).Methods("POST")
	router.HandleFunc(routes.AuthPasswordLogin, authController.PasswordLogin).Methods("POST")

	// Public catalog endpoints
	router.HandleFunc(routes.FeaturedProperty, catalogController.ListFeatured).Methods("GET")
	router.HandleFunc(routes.Properties, catalogController.ListProperties).Methods("GET")
	router.HandleFunc(routes.PropertyByID, catalogController.GetProperty).Methods("GET")

	// Protected endpoints require a valid token
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	protected.HandleFunc("/logout", authController.Logout).Methods("POST")
	protected.HandleFunc("/v1/listings", listingController.CreateListing).Methods("POST")
	protected.HandleFunc("/v1/listings", listingController.ListMyListings).Methods("GET")

	//----------------------------------------------------------------------
	// Setup daily cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()

	_, schErr := c.AddFunc("0 3 * * *", func() {
		if e := cleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule cleanup job")
	}

	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Server failed:", err)
	}
}

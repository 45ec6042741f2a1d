package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/chefpantry/chefpantry/configs"
	"github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
	"github.com/chefpantry/chefpantry/internal/infrastructure/email"
	"github.com/chefpantry/chefpantry/internal/infrastructure/health"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver"
	"github.com/chefpantry/chefpantry/internal/infrastructure/payments"
	"github.com/chefpantry/chefpantry/internal/infrastructure/redis"
	"github.com/chefpantry/chefpantry/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting Chef Pantry API...")

	// Initialize database (apply pool settings from config)
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Redis-backed adapters
	tokenRepo := repositories.NewTokenRedisRepository(redisClient, logger)
	redisCache := redis.NewCache(redisClient, "cache", logger)
	publisher := redis.NewPublisher(redisClient)

	// Database repositories
	userRepo := repositories.NewUserRepository(database, logger)
	baseChefRepo := repositories.NewChefRepository(database, logger)
	companyRepo := repositories.NewCompanyRepository(database, logger)
	baseGigRepo := repositories.NewGigRepository(database, logger)
	invoiceRepo := repositories.NewInvoiceRepository(database, logger)
	reviewRepo := repositories.NewReviewRepository(database, logger)
	notificationRepo := repositories.NewNotificationRepository(database, logger)

	// Decorate read-heavy repositories with caching (choose TTLs)
	chefRepo := repositories.NewCachingChefRepository(baseChefRepo, redisCache, 3*time.Minute)
	gigRepo := repositories.NewCachingGigRepository(baseGigRepo, redisCache, 30*time.Second)

	// External providers
	emailConfig := &email.EmailConfig{
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		SupportInbox:   cfg.Email.SupportInbox,
		BaseURL:        cfg.Email.BaseURL,
	}
	emailService, err := email.NewEmailService(emailConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service:", err)
	}

	stripeConfig := &payments.StripeConfig{
		APIKey:           cfg.Stripe.APIKey,
		OnboardingReturn: cfg.Stripe.OnboardingReturn,
		OnboardingRetry:  cfg.Stripe.OnboardingRetry,
	}
	paymentService, err := payments.NewStripeService(stripeConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize payment service:", err)
	}

	// Wire all services with their repository dependencies
	notificationService := services.NewNotificationService(notificationRepo, publisher, logger)
	defer notificationService.Stop()

	userService := services.NewUserService(userRepo, tokenRepo, logger)
	authService := services.NewAuthService(userRepo, tokenRepo, &cfg.JWT, logger)
	chefService := services.NewChefService(chefRepo, userRepo, logger)
	companyService := services.NewCompanyService(companyRepo, userRepo, emailService, notificationService, logger)
	gigService := services.NewGigService(gigRepo, userRepo, companyRepo, notificationService, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, gigRepo, userRepo, companyRepo, emailService, notificationService, logger)
	reviewService := services.NewReviewService(reviewRepo, gigRepo, companyRepo, notificationService, logger)
	payoutService := services.NewPayoutService(userRepo, paymentService, logger)

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database), health.NewRedisHealthChecker(redisClient)}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	deps := httpserver.ServerDeps{
		UserService:         userService,
		AuthService:         authService,
		ChefService:         chefService,
		CompanyService:      companyService,
		GigService:          gigService,
		InvoiceService:      invoiceService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		PayoutService:       payoutService,
		EmailService:        emailService,
		HealthCheckers:      hcSlice,
	}

	server, err := httpserver.NewServer(serverConfig, &cfg.RateLimit, logger, deps)
	if err != nil {
		logger.Fatal("Failed to initialize HTTP server:", err)
	}

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout; this also stops the limiter sweeps.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}

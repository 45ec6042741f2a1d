package httpserver

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/configs"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	customMiddleware "github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
}

type ServerDeps struct {
	UserService         ports.UserService
	AuthService         ports.AuthService
	ChefService         ports.ChefService
	CompanyService      ports.CompanyService
	GigService          ports.GigService
	InvoiceService      ports.InvoiceService
	ReviewService       ports.ReviewService
	NotificationService ports.NotificationService
	PayoutService       ports.PayoutService
	EmailService        ports.EmailService
	HealthCheckers      []ports.HealthChecker
}

type Server struct {
	echo            *echo.Echo
	config          *ServerConfig
	logger          *logrus.Logger
	userService     ports.UserService
	authSvc         ports.AuthService
	chefSvc         ports.ChefService
	companySvc      ports.CompanyService
	gigSvc          ports.GigService
	invoiceSvc      ports.InvoiceService
	reviewSvc       ports.ReviewService
	notificationSvc ports.NotificationService
	payoutSvc       ports.PayoutService
	emailSvc        ports.EmailService
	middleware      *customMiddleware.MiddlewareCollection
	healthCheckers  []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, rateLimitConfig *configs.RateLimitConfig, logger *logrus.Logger, deps ServerDeps) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	mw, err := customMiddleware.NewMiddlewareCollection(
		deps.AuthService,
		rateLimitConfig,
		logger,
		GetRequestsTotal(),
		GetRequestDuration(),
		GetRateLimitRejections(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build middleware: %w", err)
	}

	server := &Server{
		echo:            e,
		config:          serverConfig,
		logger:          logger,
		userService:     deps.UserService,
		authSvc:         deps.AuthService,
		chefSvc:         deps.ChefService,
		companySvc:      deps.CompanyService,
		gigSvc:          deps.GigService,
		invoiceSvc:      deps.InvoiceService,
		reviewSvc:       deps.ReviewService,
		notificationSvc: deps.NotificationService,
		payoutSvc:       deps.PayoutService,
		emailSvc:        deps.EmailService,
		healthCheckers:  deps.HealthCheckers,
		middleware:      mw,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server, nil
}

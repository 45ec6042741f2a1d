package middleware

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/configs"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

// MiddlewareCollection holds all middleware instances
type MiddlewareCollection struct {
	JWT       *JWTMiddleware
	Role      *RoleMiddleware
	Logging   *LoggingMiddleware
	RateLimit *RateLimitMiddleware
	Metrics   *MetricsMiddleware
}

// NewMiddlewareCollection creates a new collection of all middleware
func NewMiddlewareCollection(
	authService ports.AuthService,
	rateLimitConfig *configs.RateLimitConfig,
	logger *logrus.Logger,
	requestsTotal *prometheus.CounterVec,
	requestDuration *prometheus.HistogramVec,
	rateLimitRejections *prometheus.CounterVec,
) (*MiddlewareCollection, error) {
	rateLimit, err := NewRateLimitMiddleware(rateLimitConfig, rateLimitRejections, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate limit middleware: %w", err)
	}

	return &MiddlewareCollection{
		JWT:       NewJWTMiddleware(authService, logger),
		Role:      NewRoleMiddleware(),
		Logging:   NewLoggingMiddleware(logger),
		RateLimit: rateLimit,
		Metrics:   NewMetricsMiddleware(requestsTotal, requestDuration),
	}, nil
}

// Destroy releases middleware-held resources, stopping limiter sweeps.
func (m *MiddlewareCollection) Destroy() {
	if m.RateLimit != nil {
		m.RateLimit.Destroy()
	}
}

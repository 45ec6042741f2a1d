package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/configs"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/helpers"
	"github.com/chefpantry/chefpantry/internal/ratelimit"
)

// Limiter scope names, reused as the metric label.
const (
	ScopeAuth    = "auth"
	ScopeProfile = "profile"
	ScopeContact = "contact"
	ScopeGeneral = "general"
)

// RateLimitMiddleware guards route groups with per-scope fixed-window
// limiters. Each scope keys callers differently: the auth scope prefers the
// authenticated user id and falls back to the client IP, the profile scope
// requires a user id, the contact scope always keys by IP.
type RateLimitMiddleware struct {
	auth       *ratelimit.Limiter
	profile    *ratelimit.Limiter
	contact    *ratelimit.Limiter
	general    *ratelimit.Limiter
	rejections *prometheus.CounterVec
	logger     *logrus.Logger
}

func NewRateLimitMiddleware(cfg *configs.RateLimitConfig, rejections *prometheus.CounterVec, logger *logrus.Logger) (*RateLimitMiddleware, error) {
	m := &RateLimitMiddleware{rejections: rejections, logger: logger}

	limiters := []struct {
		dst    **ratelimit.Limiter
		scope  string
		policy configs.RateLimitPolicy
	}{
		{&m.auth, ScopeAuth, cfg.Auth},
		{&m.profile, ScopeProfile, cfg.Profile},
		{&m.contact, ScopeContact, cfg.Contact},
		{&m.general, ScopeGeneral, cfg.General},
	}
	for _, def := range limiters {
		l, err := ratelimit.New(ratelimit.Config{
			Scope:         def.scope,
			Window:        def.policy.Window,
			MaxRequests:   def.policy.MaxRequests,
			SweepInterval: cfg.SweepInterval,
		})
		if err != nil {
			m.Destroy()
			return nil, fmt.Errorf("rate limit scope %s: %w", def.scope, err)
		}
		*def.dst = l
	}

	return m, nil
}

// Auth limits login and token endpoints by user id when known, client IP
// otherwise.
func (m *RateLimitMiddleware) Auth() echo.MiddlewareFunc {
	return m.limit(m.auth, userIDOrIP)
}

// Profile limits authenticated mutation endpoints by user id.
func (m *RateLimitMiddleware) Profile() echo.MiddlewareFunc {
	return m.limit(m.profile, userIDOrIP)
}

// Contact limits the public contact form by client IP.
func (m *RateLimitMiddleware) Contact() echo.MiddlewareFunc {
	return m.limit(m.contact, byIP)
}

// General limits the remaining API surface by user id when known, client IP
// otherwise.
func (m *RateLimitMiddleware) General() echo.MiddlewareFunc {
	return m.limit(m.general, userIDOrIP)
}

// Destroy stops all limiter sweeps. Call on server shutdown.
func (m *RateLimitMiddleware) Destroy() {
	for _, l := range []*ratelimit.Limiter{m.auth, m.profile, m.contact, m.general} {
		if l != nil {
			l.Destroy()
		}
	}
}

func (m *RateLimitMiddleware) limit(l *ratelimit.Limiter, key func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := l.Check(key(c))

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", fmt.Sprintf("%d", d.Limit))
			h.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", d.Remaining))
			h.Set("X-RateLimit-Reset", d.Reset.UTC().Format(time.RFC3339))

			if !d.Allowed {
				retrySecs := int(d.RetryAfter / time.Second)
				h.Set("Retry-After", fmt.Sprintf("%d", retrySecs))
				if m.rejections != nil {
					m.rejections.WithLabelValues(l.Scope()).Inc()
				}
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{
						"scope": l.Scope(),
						"ip":    c.RealIP(),
						"path":  c.Request().URL.Path,
					}).Warn("rate limit exceeded")
				}
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"message":             "rate limit exceeded",
					"retry_after_seconds": retrySecs,
				})
			}

			return next(c)
		}
	}
}

func userIDOrIP(c echo.Context) string {
	if id, ok := helpers.GetUserIDRaw(c); ok {
		return "user:" + id.String()
	}
	return "ip:" + c.RealIP()
}

func byIP(c echo.Context) string {
	return "ip:" + c.RealIP()
}

package httpserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/chefpantry/chefpantry/configs"
	"github.com/chefpantry/chefpantry/internal/core/domain/auth"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/middleware"
	tmocks "github.com/chefpantry/chefpantry/test/mocks"
	"github.com/google/uuid"
)

func testRateLimitConfig() *configs.RateLimitConfig {
	return &configs.RateLimitConfig{
		Auth:          configs.RateLimitPolicy{Window: 15 * time.Minute, MaxRequests: 10},
		Profile:       configs.RateLimitPolicy{Window: time.Minute, MaxRequests: 30},
		Contact:       configs.RateLimitPolicy{Window: time.Hour, MaxRequests: 2},
		General:       configs.RateLimitPolicy{Window: time.Minute, MaxRequests: 120},
		SweepInterval: time.Minute,
	}
}

func testRejectionsCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_rate_limit_rejections_total"}, []string{"scope"})
}

func TestJWTMiddleware_MissingTokenReturns401(t *testing.T) {
	e := echo.New()
	m := middleware.NewJWTMiddleware(&tmocks.AuthServiceMock{}, logrus.New())
	handler := m.RequireJWT()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

func TestJWTMiddleware_InvalidTokenReturns401(t *testing.T) {
	e := echo.New()
	authMock := &tmocks.AuthServiceMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return nil, fmt.Errorf("bad")
	}}
	m := middleware.NewJWTMiddleware(authMock, logrus.New())
	handler := m.RequireJWT()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

func TestJWTMiddleware_ValidTokenSetsUserContext(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	authMock := &tmocks.AuthServiceMock{ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
		return &auth.Claims{UserID: userID, Email: "chef@example.com", Role: user.RoleChef}, nil
	}}
	m := middleware.NewJWTMiddleware(authMock, logrus.New())
	handler := m.RequireJWT()(func(c echo.Context) error {
		require.Equal(t, userID, c.Get("user_id"))
		require.Equal(t, user.RoleChef, c.Get("user_role"))
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ok")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleMiddleware_Returns403ForWrongRole(t *testing.T) {
	e := echo.New()
	m := middleware.NewRoleMiddleware()
	h := m.RequireRole(user.RoleBusiness)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_role", user.RoleChef)
	err := h(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, htErr.Code)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set("user_role", user.RoleBusiness)
	require.NoError(t, h(c))
}

func TestRateLimitMiddleware_SetsQuotaHeaders(t *testing.T) {
	m, err := middleware.NewRateLimitMiddleware(testRateLimitConfig(), testRejectionsCounter(), logrus.New())
	require.NoError(t, err)
	defer m.Destroy()

	e := echo.New()
	h := m.Contact()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	reset, err := time.Parse(time.RFC3339, rec.Header().Get("X-RateLimit-Reset"))
	require.NoError(t, err)
	if !reset.After(time.Now()) {
		t.Fatalf("reset must be in the future, got %v", reset)
	}
}

func TestRateLimitMiddleware_RejectsOverQuotaWith429(t *testing.T) {
	m, err := middleware.NewRateLimitMiddleware(testRateLimitConfig(), testRejectionsCounter(), logrus.New())
	require.NoError(t, err)
	defer m.Destroy()

	e := echo.New()
	h := m.Contact()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.9:4711"
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec
	}

	require.Equal(t, http.StatusOK, do().Code)
	require.Equal(t, http.StatusOK, do().Code)

	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	retry, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	if retry < 1 {
		t.Fatalf("Retry-After must be at least one second, got %d", retry)
	}

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "rate limit exceeded", body["message"])
	require.NotNil(t, body["retry_after_seconds"])
}

func TestRateLimitMiddleware_ScopesAreIndependent(t *testing.T) {
	cfg := testRateLimitConfig()
	cfg.Auth = configs.RateLimitPolicy{Window: time.Minute, MaxRequests: 1}
	m, err := middleware.NewRateLimitMiddleware(cfg, testRejectionsCounter(), logrus.New())
	require.NoError(t, err)
	defer m.Destroy()

	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	authH := m.Auth()(ok)
	contactH := m.Contact()(ok)

	send := func(h echo.HandlerFunc) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "198.51.100.7:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send(authH))
	require.Equal(t, http.StatusTooManyRequests, send(authH))
	// Exhausting auth leaves the contact window untouched for the same caller.
	require.Equal(t, http.StatusOK, send(contactH))
}

func TestRateLimitMiddleware_AuthKeysByUserWhenKnown(t *testing.T) {
	cfg := testRateLimitConfig()
	cfg.Auth = configs.RateLimitPolicy{Window: time.Minute, MaxRequests: 1}
	m, err := middleware.NewRateLimitMiddleware(cfg, testRejectionsCounter(), logrus.New())
	require.NoError(t, err)
	defer m.Destroy()

	e := echo.New()
	h := m.Auth()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	send := func(userID *uuid.UUID) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "198.51.100.7:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if userID != nil {
			c.Set("user_id", *userID)
		}
		require.NoError(t, h(c))
		return rec.Code
	}

	u1 := uuid.New()
	u2 := uuid.New()
	require.Equal(t, http.StatusOK, send(&u1))
	require.Equal(t, http.StatusTooManyRequests, send(&u1))
	// A different user from the same IP still has quota.
	require.Equal(t, http.StatusOK, send(&u2))
	// And so does the anonymous IP bucket.
	require.Equal(t, http.StatusOK, send(nil))
}

func TestRateLimitMiddleware_RejectsInvalidConfig(t *testing.T) {
	cfg := testRateLimitConfig()
	cfg.General = configs.RateLimitPolicy{Window: time.Minute, MaxRequests: 0}
	_, err := middleware.NewRateLimitMiddleware(cfg, testRejectionsCounter(), logrus.New())
	require.Error(t, err)
	require.Contains(t, err.Error(), "general")
}

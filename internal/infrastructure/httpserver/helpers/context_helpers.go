package helpers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/chefpantry/chefpantry/internal/core/domain/user"
)

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

// GetUserIDFromContext returns the authenticated user's id. Handlers behind
// the JWT middleware can rely on it being present.
func GetUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := GetUserIDRaw(c)
	if !ok {
		return uuid.Nil, errUnauthorized
	}
	return id, nil
}

func GetUserRoleFromContext(c echo.Context) (user.UserRole, error) {
	r, ok := GetUserRoleRaw(c)
	if !ok {
		return "", errUnauthorized
	}
	return r, nil
}

func GetUserEmailFromContext(c echo.Context) (string, error) {
	s, ok := GetUserEmailRaw(c)
	if !ok {
		return "", errUnauthorized
	}
	return s, nil
}

// GetJWTTokenFromContext extracts the bearer token from the Authorization
// header without validating it.
func GetJWTTokenFromContext(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed authorization header")
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed authorization header")
	}
	return token, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/helpers"
)

// RoleMiddleware restricts routes to particular account roles. It must run
// after RequireJWT so the role is already on the context.
type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

// RequireRole rejects requests whose authenticated role is not in allowed.
func (m *RoleMiddleware) RequireRole(allowed ...user.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := helpers.GetUserRoleFromContext(c)
			if err != nil {
				return err
			}
			for _, r := range allowed {
				if role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

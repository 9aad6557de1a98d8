package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/metrics"
	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

// KeyRoles holds the domain.RoleSet loaded by LoadRoles.
const KeyRoles = "roles"

// LoadRoles re-reads the caller's roles from the store on every request so
// that a revoked grant takes effect without waiting for the token to expire.
// It must run after Auth.
func LoadRoles(roles ports.RoleService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get(KeyUID).(string)
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			start := time.Now()
			set, err := roles.Evaluate(c.Request().Context(), uid)
			metrics.ObserveRoleEvaluation(start)
			if err != nil {
				return err
			}

			c.Set(KeyRoles, set)
			return next(c)
		}
	}
}

// RequireRole lets the request through when the caller holds any of the
// given roles.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, _ := c.Get(KeyRoles).(domain.RoleSet)
			for _, r := range allowed {
				if held.Has(r) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

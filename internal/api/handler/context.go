package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/middleware"
	"github.com/iskate/admin-portal/internal/core/domain"
)

// ctxActor builds the acting operator from what Auth and LoadRoles put on the
// context. A missing uid means the middleware did not run.
func ctxActor(c echo.Context) (domain.Actor, error) {
	uid, _ := c.Get(middleware.KeyUID).(string)
	if uid == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	roles, _ := c.Get(middleware.KeyRoles).(domain.RoleSet)
	return domain.Actor{UID: uid, Roles: roles}, nil
}

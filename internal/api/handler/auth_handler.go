package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/metrics"
	"github.com/iskate/admin-portal/internal/api/middleware"
	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an operator and returns a session token. Only holders
// of the admin role may sign in.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.Principal,
	})
}

// Logout revokes the current session token.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get(middleware.KeyTokenID).(string)
	exp, _ := c.Get(middleware.KeyExpires).(time.Time)

	if err := h.authService.Logout(c.Request().Context(), jti, exp); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in operator together with what they may do.
//
// @Summary      Current operator
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  meResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	p, err := h.authService.Me(c.Request().Context(), actor.UID)
	if err != nil {
		return err
	}
	if p.Email == "" {
		p.Email, _ = c.Get(middleware.KeyEmail).(string)
	}

	return c.JSON(http.StatusOK, meResponse{
		Principal:       *p,
		ManageableRoles: domain.ManageableRoles(p.Roles),
		CanToggleApp:    p.Roles.Has(domain.RoleOwner),
	})
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrNotAdmin):
		return "not_admin"
	default:
		return "error"
	}
}

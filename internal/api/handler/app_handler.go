package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/metrics"
	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

// AppHandler exposes the global application-active flag.
type AppHandler struct {
	service ports.AppService
}

func NewAppHandler(service ports.AppService) *AppHandler {
	return &AppHandler{service: service}
}

// Get handles GET /v1/app.
//
// @Summary      Application state
// @Tags         app
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AppState
// @Failure      404  {object}  errorResponse
// @Router       /v1/app [get]
func (h *AppHandler) Get(c echo.Context) error {
	state, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// SetActive handles PUT /v1/app/active. The version must match the stored
// one; a stale version gets 409 and the client should re-read.
//
// @Summary      Turn the mobile app on or off
// @Tags         app
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setAppActiveRequest  true  "Desired state"
// @Success      200   {object}  domain.AppState
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/app/active [put]
func (h *AppHandler) SetActive(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req setAppActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	state, err := h.service.SetActive(c.Request().Context(), actor, *req.Active, req.Version)
	metrics.AppToggleTotal.WithLabelValues(toggleResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

func toggleResult(err error) string {
	if errors.Is(err, domain.ErrVersionConflict) {
		return "conflict"
	}
	return metrics.Result(err)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/metrics"
	"github.com/iskate/admin-portal/internal/core/ports"
)

type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// List handles GET /v1/reports.
//
// @Summary      List reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportListResponse
// @Router       /v1/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reportListResponse{Pending: list.Pending, Resolved: list.Resolved})
}

// Resolve handles POST /v1/reports/:id/resolve.
//
// @Summary      Resolve a report
// @Tags         reports
// @Security     BearerAuth
// @Param        id   path  string  true  "Report id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports/{id}/resolve [post]
func (h *ReportHandler) Resolve(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	err = h.service.Resolve(c.Request().Context(), actor, c.Param("id"))
	metrics.ModerationActionsTotal.WithLabelValues("resolve_report", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/metrics"
	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

const defaultSuspensionDays = 7

// UserHandler serves the user directory and moderation actions.
type UserHandler struct {
	users ports.UserService
	roles ports.RoleService
	now   func() time.Time
}

func NewUserHandler(users ports.UserService, roles ports.RoleService) *UserHandler {
	return &UserHandler{users: users, roles: roles, now: time.Now}
}

// List handles GET /v1/users.
//
// @Summary      List users
// @Description  Users split into active, banned and suspended. Filters and sorting apply to the active list.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring of username or uid"
// @Param        role    query     string  false  "Only users holding this role"  Enums(all, admin, mod, owner)
// @Param        sort    query     string  false  "Ordering of active users"      Enums(username, uid, roles)
// @Success      200     {object}  userListResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	q := ports.ListUsersQuery{Search: strings.TrimSpace(c.QueryParam("search"))}

	if raw := strings.TrimSpace(c.QueryParam("role")); raw != "" && !strings.EqualFold(raw, "all") {
		role, err := domain.ParseRole(raw)
		if err != nil {
			return err
		}
		q.Role = role
	}

	switch sort := ports.UserSort(c.QueryParam("sort")); sort {
	case "", ports.SortByUsername, ports.SortByUID, ports.SortByRoles:
		q.Sort = sort
	default:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "sort must be one of: username uid roles")
	}

	res, err := h.users.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Active:    res.Active,
		Banned:    res.Banned,
		Suspended: res.Suspended,
	})
}

// Get handles GET /v1/users/:uid.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User id"
// @Success      200  {object}  domain.UserSummary
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{uid} [get]
func (h *UserHandler) Get(c echo.Context) error {
	u, err := h.users.Get(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Ban handles POST /v1/users/:uid/ban.
//
// @Summary      Ban a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string      true  "User id"
// @Param        body  body      banRequest  false "Reason"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{uid}/ban [post]
func (h *UserHandler) Ban(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req banRequest
	if err := bindOptional(c, &req); err != nil {
		return err
	}

	uid := c.Param("uid")
	status, err := h.users.Ban(c.Request().Context(), actor, uid, strings.TrimSpace(req.Reason))
	metrics.ModerationActionsTotal.WithLabelValues("ban", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{UID: uid, Status: *status})
}

// Suspend handles POST /v1/users/:uid/suspend.
//
// @Summary      Suspend a user
// @Description  Suspends for `days` days or until `until`. Defaults to seven days.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string          true  "User id"
// @Param        body  body      suspendRequest  false "Suspension"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{uid}/suspend [post]
func (h *UserHandler) Suspend(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req suspendRequest
	if err := bindOptional(c, &req); err != nil {
		return err
	}

	until := h.now().AddDate(0, 0, defaultSuspensionDays)
	switch {
	case req.Until != nil:
		until = *req.Until
	case req.Days > 0:
		until = h.now().AddDate(0, 0, req.Days)
	}

	uid := c.Param("uid")
	status, err := h.users.Suspend(c.Request().Context(), actor, uid, until, strings.TrimSpace(req.Reason))
	metrics.ModerationActionsTotal.WithLabelValues("suspend", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{UID: uid, Status: *status})
}

// Unban handles POST /v1/users/:uid/unban.
//
// @Summary      Lift a ban
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Router       /v1/users/{uid}/unban [post]
func (h *UserHandler) Unban(c echo.Context) error {
	return h.clear(c, "unban")
}

// Unsuspend handles POST /v1/users/:uid/unsuspend.
//
// @Summary      Lift a suspension
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Router       /v1/users/{uid}/unsuspend [post]
func (h *UserHandler) Unsuspend(c echo.Context) error {
	return h.clear(c, "unsuspend")
}

// clear resets the whole moderation state; unban and unsuspend are the same
// write.
func (h *UserHandler) clear(c echo.Context, action string) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	uid := c.Param("uid")
	status, err := h.users.Clear(c.Request().Context(), actor, uid)
	metrics.ModerationActionsTotal.WithLabelValues(action, metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{UID: uid, Status: *status})
}

// SetRole handles PUT /v1/users/:uid/roles/:role.
//
// @Summary      Grant or revoke a role
// @Description  Owners manage admin, admins manage mod. Owner cannot be changed here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string          true  "User id"
// @Param        role  path      string          true  "Role"  Enums(admin, mod)
// @Param        body  body      setRoleRequest  true  "Grant or revoke"
// @Success      200   {object}  roleResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{uid}/roles/{role} [put]
func (h *UserHandler) SetRole(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	action := "revoke_" + string(role)
	if *req.Active {
		action = "grant_" + string(role)
	}

	uid := c.Param("uid")
	roles, err := h.roles.SetRole(c.Request().Context(), actor, uid, role, *req.Active)
	metrics.ModerationActionsTotal.WithLabelValues(action, metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{UID: uid, Roles: roles})
}

// bindOptional binds and validates a body that may be omitted entirely.
func bindOptional(c echo.Context, req any) error {
	if c.Request().ContentLength != 0 {
		if err := c.Bind(req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

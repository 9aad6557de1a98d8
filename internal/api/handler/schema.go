package handler

import (
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      domain.Principal `json:"user"`
}

type meResponse struct {
	domain.Principal
	ManageableRoles []domain.Role `json:"manageable_roles"`
	CanToggleApp    bool          `json:"can_toggle_app"`
}

// --- Users ---

type userListResponse struct {
	Active    []domain.UserSummary `json:"active"`
	Banned    []domain.UserSummary `json:"banned"`
	Suspended []domain.UserSummary `json:"suspended"`
}

type banRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// suspendRequest takes either a duration in days or an absolute end time.
// With neither, the suspension lasts defaultSuspensionDays.
type suspendRequest struct {
	Days   int        `json:"days"   validate:"omitempty,gt=0,max=3650"`
	Until  *time.Time `json:"until"  validate:"excluded_with=Days"`
	Reason string     `json:"reason" validate:"max=500"`
}

type statusResponse struct {
	UID    string            `json:"uid"`
	Status domain.UserStatus `json:"status"`
}

type setRoleRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type roleResponse struct {
	UID   string         `json:"uid"`
	Roles domain.RoleSet `json:"roles"`
}

// --- App ---

type setAppActiveRequest struct {
	Active  *bool `json:"active"  validate:"required"`
	Version int64 `json:"version" validate:"gte=0"`
}

// --- Reports ---

type reportListResponse struct {
	Pending  []*domain.Report `json:"pending"`
	Resolved []*domain.Report `json:"resolved"`
}

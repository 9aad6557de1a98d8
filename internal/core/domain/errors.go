package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRoleNotFound     = errors.New("role record not found")
	ErrAppStateNotFound = errors.New("app document not found")
	ErrReportNotFound   = errors.New("report not found")

	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidSuspension = errors.New("suspension end must be in the future")
	ErrVersionConflict   = errors.New("app state was modified concurrently")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")
	ErrNotAdmin           = errors.New("admin role required")
	ErrForbidden          = errors.New("access forbidden")
	ErrCredentialExists   = errors.New("credential already exists")
)

package ports

import (
	"context"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// RoleRepository persists one record per (user, role).
type RoleRepository interface {
	// Find returns domain.ErrRoleNotFound when the record is absent.
	Find(ctx context.Context, uid string, role domain.Role) (*domain.UserRole, error)
	// SetActive merge-upserts the record. The grant time is written only when
	// active is true.
	SetActive(ctx context.Context, uid string, role domain.Role, active bool, at time.Time) error
}

package ports

import (
	"context"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type RoleService interface {
	// Evaluate returns the roles uid holds. One failed lookup fails the call.
	Evaluate(ctx context.Context, uid string) (domain.RoleSet, error)
	// SetRole grants or revokes role on uid and returns the resulting set.
	// It returns domain.ErrForbidden when actor may not manage role.
	SetRole(ctx context.Context, actor domain.Actor, uid string, role domain.Role, active bool) (domain.RoleSet, error)
}

package ports

import (
	"context"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// UserRepository persists user profiles and their embedded status.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no profile exists.
	FindByID(ctx context.Context, uid string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// MergeStatus merge-upserts the patch into the profile's status,
	// creating the profile if it does not exist.
	MergeStatus(ctx context.Context, uid string, patch domain.StatusPatch) error
}

package ports

import (
	"context"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// UserSort selects the ordering of the active user list.
type UserSort string

const (
	SortByUsername UserSort = "username"
	SortByUID      UserSort = "uid"
	SortByRoles    UserSort = "roles"
)

// ListUsersQuery carries the listing filters.
type ListUsersQuery struct {
	Search string      // case-insensitive substring of username or uid
	Role   domain.Role // empty = all roles
	Sort   UserSort    // empty = SortByUsername
}

// ListUsersResult splits users by moderation state. A user that is both
// banned and suspended appears in both Banned and Suspended.
type ListUsersResult struct {
	Active    []domain.UserSummary
	Banned    []domain.UserSummary
	Suspended []domain.UserSummary
}

type UserService interface {
	List(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error)
	Get(ctx context.Context, uid string) (*domain.UserSummary, error)
	Ban(ctx context.Context, actor domain.Actor, uid, reason string) (*domain.UserStatus, error)
	Suspend(ctx context.Context, actor domain.Actor, uid string, until time.Time, reason string) (*domain.UserStatus, error)
	// Clear backs both unban and unsuspend.
	Clear(ctx context.Context, actor domain.Actor, uid string) (*domain.UserStatus, error)
}

package ports

import (
	"context"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal domain.Principal
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Me(ctx context.Context, uid string) (*domain.Principal, error)
}

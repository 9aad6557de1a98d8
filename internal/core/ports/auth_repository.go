package ports

import (
	"context"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// AuthProvider signs an operator in with email and password.
type AuthProvider interface {
	// SignIn returns domain.ErrInvalidCredentials on a bad email/password pair.
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)
}

// CredentialRepository stores operator logins for the local provider.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) error
}

// SessionStore tracks revoked session tokens by token id.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

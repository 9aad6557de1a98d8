// Package local authenticates operators against bcrypt hashes kept in the
// portal's own store, for deployments without Firebase Authentication.
package local

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

type Provider struct {
	repo ports.CredentialRepository
}

func NewProvider(repo ports.CredentialRepository) *Provider {
	return &Provider{repo: repo}
}

// SignIn does not distinguish an unknown email from a wrong password.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	cred, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Identity{UID: cred.UID, Email: cred.Email, DisplayName: cred.DisplayName}, nil
}

// Register stores a new operator credential. An empty uid gets a fresh one.
func (p *Provider) Register(ctx context.Context, email, password, uid, displayName string) (*domain.Credential, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < 8 {
		return nil, domain.ErrInvalidCredentials
	}
	if uid == "" {
		uid = uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{UID: uid, Email: email, DisplayName: displayName, PasswordHash: string(hash)}
	if err := p.repo.Create(ctx, cred); err != nil {
		return nil, err
	}
	return cred, nil
}

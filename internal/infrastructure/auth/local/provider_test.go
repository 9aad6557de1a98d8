package local

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type stubCredentialRepo struct {
	creds map[string]*domain.Credential
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{creds: make(map[string]*domain.Credential)}
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	c, ok := r.creds[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCredentialRepo) Create(_ context.Context, cred *domain.Credential) error {
	key := strings.ToLower(cred.Email)
	if _, exists := r.creds[key]; exists {
		return domain.ErrCredentialExists
	}
	clone := *cred
	r.creds[key] = &clone
	return nil
}

func TestProvider_RegisterThenSignIn(t *testing.T) {
	repo := newStubCredentialRepo()
	p := NewProvider(repo)
	ctx := context.Background()

	cred, err := p.Register(ctx, "ops@example.com", "correct horse", "", "Ops")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if cred.UID == "" {
		t.Fatalf("expected generated uid")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	id, err := p.SignIn(ctx, "ops@example.com", "correct horse")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if id.UID != cred.UID || id.DisplayName != "Ops" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestProvider_SignIn_Rejects(t *testing.T) {
	repo := newStubCredentialRepo()
	p := NewProvider(repo)
	ctx := context.Background()
	_, _ = p.Register(ctx, "ops@example.com", "correct horse", "u1", "")

	if _, err := p.SignIn(ctx, "ops@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := p.SignIn(ctx, "ghost@example.com", "correct horse"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestProvider_Register_Validation(t *testing.T) {
	p := NewProvider(newStubCredentialRepo())
	ctx := context.Background()

	if _, err := p.Register(ctx, "", "long enough", "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := p.Register(ctx, "a@example.com", "short", "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for short password, got %v", err)
	}
}

func TestProvider_Register_Duplicate(t *testing.T) {
	p := NewProvider(newStubCredentialRepo())
	ctx := context.Background()

	_, _ = p.Register(ctx, "a@example.com", "long enough", "", "")
	if _, err := p.Register(ctx, "a@example.com", "long enough", "", ""); !errors.Is(err, domain.ErrCredentialExists) {
		t.Fatalf("expected ErrCredentialExists, got %v", err)
	}
}

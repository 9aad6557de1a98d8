package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

// AuthService implements operator login, logout and profile lookup.
type AuthService struct {
	provider  ports.AuthProvider
	users     ports.UserRepository
	roles     ports.RoleService
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	provider ports.AuthProvider,
	users ports.UserRepository,
	roles ports.RoleService,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{
		provider:  provider,
		users:     users,
		roles:     roles,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

// Login signs the operator in, overlays the stored profile on the provider's
// identity and requires an active admin role before issuing a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	id, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	principal := domain.Principal{
		UID:      id.UID,
		Email:    id.Email,
		Username: id.DisplayName,
		PhotoURL: id.PhotoURL,
	}
	if err := s.overlayProfile(ctx, &principal); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	roles, err := s.roles.Evaluate(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !roles.Has(domain.RoleAdmin) {
		s.log.Warn().Str("uid", id.UID).Msg("login refused: no active admin role")
		return nil, domain.ErrNotAdmin
	}
	principal.Roles = roles

	token, expiresAt, err := s.generateToken(principal)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Str("uid", id.UID).Msg("operator logged in")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, Principal: principal}, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return domain.ErrUnauthorized
	}
	if err := s.sessions.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, uid string) (*domain.Principal, error) {
	p := domain.Principal{UID: uid}
	if err := s.overlayProfile(ctx, &p); err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	roles, err := s.roles.Evaluate(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	p.Roles = roles
	return &p, nil
}

// overlayProfile replaces the display name and photo with the app profile's
// username and photo when those are set. A missing profile is not an error.
func (s *AuthService) overlayProfile(ctx context.Context, p *domain.Principal) error {
	profile, err := s.users.FindByID(ctx, p.UID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if profile.Username != "" {
		p.Username = profile.Username
	}
	if profile.PhotoURL != "" {
		p.PhotoURL = profile.PhotoURL
	}
	return nil
}

func (s *AuthService) generateToken(p domain.Principal) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":      p.UID,
		"email":    p.Email,
		"username": p.Username,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

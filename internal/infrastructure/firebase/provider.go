package firebase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type verifyPasswordFunc func(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error)

type userLookup interface {
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
}

// Provider signs operators in with Firebase email/password accounts.
type Provider struct {
	verify verifyPasswordFunc
	users  userLookup
	log    zerolog.Logger
}

// NewProvider builds a Provider that verifies passwords through the Identity
// Toolkit API (using the project's web API key) and reads user records
// through the Admin SDK.
func NewProvider(ctx context.Context, app *firebase.App, apiKey string, log zerolog.Logger) (*Provider, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identity toolkit: %w", err)
	}
	users, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	verify := func(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error) {
		return svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
			Email:    email,
			Password: password,
		}).Context(ctx).Do()
	}
	return &Provider{verify: verify, users: users, log: log}, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	resp, err := p.verify(ctx, email, password)
	if err != nil {
		// Wrong password, unknown email and disabled accounts all come back as 400.
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusBadRequest {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	id := &domain.Identity{UID: resp.LocalId, Email: resp.Email, DisplayName: resp.DisplayName}

	// Best-effort: the user record carries the photo and a fresher display name.
	rec, err := p.users.GetUser(ctx, resp.LocalId)
	switch {
	case err != nil:
		p.log.Warn().Err(err).Str("uid", resp.LocalId).Msg("user record lookup failed")
	case rec != nil && rec.UserInfo != nil:
		if rec.DisplayName != "" {
			id.DisplayName = rec.DisplayName
		}
		id.PhotoURL = rec.PhotoURL
	}
	return id, nil
}

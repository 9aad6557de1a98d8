package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/pkg/config"
)

// seedOperator bootstraps the first operator: it stores a local credential
// when AUTH_PROVIDER=local and grants admin, plus owner with -owner.
//
//	admin-portal seed-operator -email ops@iskate.app -password '...' -name Ops -owner
//	admin-portal seed-operator -uid <firebase uid> -owner
func seedOperator(ctx context.Context, cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("seed-operator", flag.ContinueOnError)
	email := fs.String("email", "", "operator email (local auth only)")
	password := fs.String("password", "", "operator password, at least 8 characters (local auth only)")
	name := fs.String("name", "", "display name (local auth only)")
	uid := fs.String("uid", "", "user id to grant roles to; generated for new local operators when empty")
	owner := fs.Bool("owner", false, "also grant the owner role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer be.close(log)

	target := *uid
	if be.local != nil && *email != "" {
		cred, err := be.local.Register(ctx, *email, *password, *uid, *name)
		switch {
		case errors.Is(err, domain.ErrCredentialExists):
			return fmt.Errorf("an operator with email %s already exists", *email)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return fmt.Errorf("email is required and the password must be at least 8 characters")
		case err != nil:
			return err
		}
		target = cred.UID
		log.Info().Str("uid", cred.UID).Str("email", cred.Email).Msg("operator credential created")
	}
	if target == "" {
		return fmt.Errorf("nothing to seed: pass -uid, or -email and -password with AUTH_PROVIDER=local")
	}

	grants := []domain.Role{domain.RoleAdmin}
	if *owner {
		grants = append(grants, domain.RoleOwner)
	}
	now := time.Now().UTC()
	for _, r := range grants {
		if err := be.roles.SetActive(ctx, target, r, true, now); err != nil {
			return fmt.Errorf("grant %s to %s: %w", r, target, err)
		}
		log.Info().Str("uid", target).Str("role", string(r)).Msg("role granted")
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

type roleService struct {
	roles ports.RoleRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewRoleService returns a RoleService backed by repo.
func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) ports.RoleService {
	return &roleService{roles: repo, log: log, now: time.Now}
}

// Evaluate looks up every role concurrently and joins the results. A missing
// record means the role is not held; any other error aborts the whole set.
func (s *roleService) Evaluate(ctx context.Context, uid string) (domain.RoleSet, error) {
	held := make([]bool, len(domain.Roles))

	g, gctx := errgroup.WithContext(ctx)
	for i, role := range domain.Roles {
		g.Go(func() error {
			rec, err := s.roles.Find(gctx, uid, role)
			if errors.Is(err, domain.ErrRoleNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("lookup %s role: %w", role, err)
			}
			held[i] = rec.Active
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate roles for %s: %w", uid, err)
	}

	set := make(domain.RoleSet, 0, len(domain.Roles))
	for i, role := range domain.Roles {
		if held[i] {
			set = append(set, role)
		}
	}
	return set, nil
}

// SetRole enforces the manage policy before writing.
func (s *roleService) SetRole(ctx context.Context, actor domain.Actor, uid string, role domain.Role, active bool) (domain.RoleSet, error) {
	if !domain.CanManageRole(actor.Roles, role) {
		s.log.Warn().
			Str("actor", actor.UID).
			Str("uid", uid).
			Str("role", string(role)).
			Msg("role change denied")
		return nil, domain.ErrForbidden
	}

	if err := s.roles.SetActive(ctx, uid, role, active, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("set %s role: %w", role, err)
	}

	s.log.Info().
		Str("actor", actor.UID).
		Str("uid", uid).
		Str("role", string(role)).
		Bool("active", active).
		Msg("role changed")

	return s.Evaluate(ctx, uid)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

type appService struct {
	repo ports.AppRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAppService returns an AppService backed by repo.
func NewAppService(repo ports.AppRepository, log zerolog.Logger) ports.AppService {
	return &appService{repo: repo, log: log, now: time.Now}
}

func (s *appService) Get(ctx context.Context) (*domain.AppState, error) {
	state, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get app state: %w", err)
	}
	return state, nil
}

// SetActive is owner-only. The write is conditional on expectedVersion so two
// operators toggling at once cannot silently overwrite each other.
func (s *appService) SetActive(ctx context.Context, actor domain.Actor, active bool, expectedVersion int64) (*domain.AppState, error) {
	if !actor.Roles.Has(domain.RoleOwner) {
		return nil, domain.ErrForbidden
	}

	state, err := s.repo.SetActive(ctx, active, expectedVersion, actor.UID, s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			s.log.Warn().
				Str("actor", actor.UID).
				Int64("expected_version", expectedVersion).
				Msg("app toggle rejected: stale version")
		}
		return nil, fmt.Errorf("set app active: %w", err)
	}

	s.log.Info().
		Str("actor", actor.UID).
		Bool("active", state.Active).
		Int64("version", state.Version).
		Msg("app active flag changed")

	return state, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

const defaultLookupConcurrency = 16

type userService struct {
	users       ports.UserRepository
	roles       ports.RoleService
	concurrency int
	log         zerolog.Logger
	now         func() time.Time
}

// NewUserService returns a UserService. concurrency bounds how many users have
// their roles evaluated at once while listing; <= 0 uses a default of 16.
func NewUserService(users ports.UserRepository, roles ports.RoleService, concurrency int, log zerolog.Logger) ports.UserService {
	if concurrency <= 0 {
		concurrency = defaultLookupConcurrency
	}
	return &userService{
		users:       users,
		roles:       roles,
		concurrency: concurrency,
		log:         log,
		now:         time.Now,
	}
}

// List loads every profile, evaluates roles for all of them and splits the
// result by moderation state. Role and search filters apply to the active
// list only.
func (s *userService) List(ctx context.Context, q ports.ListUsersQuery) (*ports.ListUsersResult, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]domain.UserSummary, len(all))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, u := range all {
		g.Go(func() error {
			roles, err := s.roles.Evaluate(gctx, u.UID)
			if err != nil {
				return err
			}
			summaries[i] = domain.UserSummary{User: *u, Roles: roles}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := &ports.ListUsersResult{
		Active:    []domain.UserSummary{},
		Banned:    []domain.UserSummary{},
		Suspended: []domain.UserSummary{},
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, su := range summaries {
		if su.Status.Banned {
			res.Banned = append(res.Banned, su)
		}
		if su.Status.Suspended {
			res.Suspended = append(res.Suspended, su)
		}
		if !su.Status.IsActive() {
			continue
		}
		if q.Role != "" && !su.Roles.Has(q.Role) {
			continue
		}
		if needle != "" && !matchesSearch(su.User, needle) {
			continue
		}
		res.Active = append(res.Active, su)
	}

	sortUsers(res.Active, q.Sort)
	sortUsers(res.Banned, ports.SortByUsername)
	sortUsers(res.Suspended, ports.SortByUsername)
	return res, nil
}

func (s *userService) Get(ctx context.Context, uid string) (*domain.UserSummary, error) {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	roles, err := s.roles.Evaluate(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &domain.UserSummary{User: *u, Roles: roles}, nil
}

func (s *userService) Ban(ctx context.Context, actor domain.Actor, uid, reason string) (*domain.UserStatus, error) {
	patch := domain.BanPatch(strings.TrimSpace(reason), s.now().UTC())
	return s.mutateStatus(ctx, actor, uid, "ban", patch)
}

func (s *userService) Suspend(ctx context.Context, actor domain.Actor, uid string, until time.Time, reason string) (*domain.UserStatus, error) {
	now := s.now().UTC()
	if !until.After(now) {
		return nil, domain.ErrInvalidSuspension
	}
	patch := domain.SuspendPatch(until.UTC(), strings.TrimSpace(reason), now)
	return s.mutateStatus(ctx, actor, uid, "suspend", patch)
}

func (s *userService) Clear(ctx context.Context, actor domain.Actor, uid string) (*domain.UserStatus, error) {
	return s.mutateStatus(ctx, actor, uid, "clear", domain.ClearPatch())
}

// mutateStatus reads the current status (default when the profile is absent),
// merge-writes the patch and returns the status the write produces.
func (s *userService) mutateStatus(ctx context.Context, actor domain.Actor, uid, action string, patch domain.StatusPatch) (*domain.UserStatus, error) {
	current, err := s.users.FindByID(ctx, uid)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		current = &domain.User{UID: uid}
	case err != nil:
		return nil, fmt.Errorf("%s user %s: %w", action, uid, err)
	}

	if err := s.users.MergeStatus(ctx, uid, patch); err != nil {
		s.log.Error().
			Err(err).
			Str("actor", actor.UID).
			Str("uid", uid).
			Str("action", action).
			Msg("status write failed")
		return nil, fmt.Errorf("%s user %s: %w", action, uid, err)
	}

	next := current.Status.Apply(patch)
	s.log.Info().
		Str("actor", actor.UID).
		Str("uid", uid).
		Str("action", action).
		Bool("banned", next.Banned).
		Bool("suspended", next.Suspended).
		Msg("user status changed")

	return &next, nil
}

func matchesSearch(u domain.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.Username), needle) ||
		strings.Contains(strings.ToLower(u.UID), needle)
}

// sortUsers orders list in place. Collators are not safe for concurrent use,
// so one is built per call.
func sortUsers(list []domain.UserSummary, by ports.UserSort) {
	c := collate.New(language.English)
	byName := func(a, b domain.UserSummary) int {
		return c.CompareString(a.Username, b.Username)
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch by {
		case ports.SortByUID:
			return c.CompareString(a.UID, b.UID) < 0
		case ports.SortByRoles:
			if ra, rb := a.Roles.Rank(), b.Roles.Rank(); ra != rb {
				return ra > rb
			}
			return byName(a, b) < 0
		default:
			return byName(a, b) < 0
		}
	})
}

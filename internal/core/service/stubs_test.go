package service

import (
	"context"
	"sync"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type memUserRepo struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	listErr  error
	mergeErr error
}

func newMemUserRepo(users ...domain.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := u
		r.users[u.UID] = &clone
	}
	return r
}

func (r *memUserRepo) FindByID(_ context.Context, uid string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// MergeStatus mirrors the stores' merge-upsert: absent profiles are created
// and only the patched fields change.
func (r *memUserRepo) MergeStatus(_ context.Context, uid string, patch domain.StatusPatch) error {
	if r.mergeErr != nil {
		return r.mergeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		u = &domain.User{UID: uid}
		r.users[uid] = u
	}
	u.Status = u.Status.Apply(patch)
	return nil
}

type roleKey struct {
	uid  string
	role domain.Role
}

type memRoleRepo struct {
	mu      sync.Mutex
	records map[roleKey]domain.UserRole
	findErr map[domain.Role]error
	writes  int
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{records: make(map[roleKey]domain.UserRole), findErr: make(map[domain.Role]error)}
}

func (r *memRoleRepo) put(uid string, role domain.Role, active bool) {
	r.records[roleKey{uid, role}] = domain.UserRole{UID: uid, Role: role, Active: active}
}

func (r *memRoleRepo) Find(_ context.Context, uid string, role domain.Role) (*domain.UserRole, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.findErr[role]; err != nil {
		return nil, err
	}
	rec, ok := r.records[roleKey{uid, role}]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &rec, nil
}

func (r *memRoleRepo) SetActive(_ context.Context, uid string, role domain.Role, active bool, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	rec := r.records[roleKey{uid, role}]
	rec.UID, rec.Role, rec.Active = uid, role, active
	if active {
		rec.GrantedAt = &at
	}
	r.records[roleKey{uid, role}] = rec
	return nil
}

type memAppRepo struct {
	state *domain.AppState
}

func (r *memAppRepo) Get(_ context.Context) (*domain.AppState, error) {
	if r.state == nil {
		return nil, domain.ErrAppStateNotFound
	}
	clone := *r.state
	return &clone, nil
}

func (r *memAppRepo) SetActive(_ context.Context, active bool, expectedVersion int64, by string, at time.Time) (*domain.AppState, error) {
	if r.state == nil {
		return nil, domain.ErrAppStateNotFound
	}
	if r.state.Version != expectedVersion {
		return nil, domain.ErrVersionConflict
	}
	r.state = &domain.AppState{Active: active, Version: expectedVersion + 1, UpdatedAt: &at, UpdatedBy: by}
	clone := *r.state
	return &clone, nil
}

type memReportRepo struct {
	reports map[string]*domain.Report
}

func (r *memReportRepo) List(_ context.Context) ([]*domain.Report, error) {
	out := make([]*domain.Report, 0, len(r.reports))
	for _, rep := range r.reports {
		clone := *rep
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memReportRepo) MarkResolved(_ context.Context, id string) error {
	rep, ok := r.reports[id]
	if !ok {
		return domain.ErrReportNotFound
	}
	rep.Status = domain.ReportStatusResolved
	return nil
}

type stubProvider struct {
	signInFn func(ctx context.Context, email, password string) (*domain.Identity, error)
}

func (p *stubProvider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	return p.signInFn(ctx, email, password)
}

type memSessions struct {
	revoked map[string]time.Time
}

func (s *memSessions) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.revoked[tokenID] = until
	return nil
}

func (s *memSessions) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

var _ ports.UserRepository = (*memUserRepo)(nil)
var _ ports.RoleRepository = (*memRoleRepo)(nil)
var _ ports.AppRepository = (*memAppRepo)(nil)
var _ ports.ReportRepository = (*memReportRepo)(nil)
var _ ports.SessionStore = (*memSessions)(nil)

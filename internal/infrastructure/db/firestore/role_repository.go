package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type RoleRepository struct {
	client *firestore.Client
}

func NewRoleRepository(client *firestore.Client) *RoleRepository {
	return &RoleRepository{client: client}
}

func (r *RoleRepository) ref(uid string, role domain.Role) *firestore.DocumentRef {
	return r.client.Collection(collectionUsers).Doc(uid).Collection(collectionRoles).Doc(string(role))
}

func (r *RoleRepository) Find(ctx context.Context, uid string, role domain.Role) (*domain.UserRole, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	snap, err := r.ref(uid, role).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}

	data := snap.Data()
	return &domain.UserRole{
		UID:       uid,
		Role:      role,
		Active:    boolField(data, "active"),
		GrantedAt: timeField(data, "timeStamp"),
	}, nil
}

func (r *RoleRepository) SetActive(ctx context.Context, uid string, role domain.Role, active bool, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if _, err := r.ref(uid, role).Set(ctx, roleFields(active, at), firestore.MergeAll); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

// roleFields leaves timeStamp alone on revoke.
func roleFields(active bool, at time.Time) map[string]any {
	fields := map[string]any{"active": active}
	if active {
		fields["timeStamp"] = at
	}
	return fields
}

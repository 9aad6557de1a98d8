package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) FindByID(ctx context.Context, uid string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	snap, err := r.client.Collection(collectionUsers).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return decodeUser(snap.Ref.ID, snap.Data()), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	snaps, err := r.client.Collection(collectionUsers).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, 0, len(snaps))
	for _, snap := range snaps {
		users = append(users, decodeUser(snap.Ref.ID, snap.Data()))
	}
	return users, nil
}

// MergeStatus merges the patched fields into the status map. MergeAll only
// touches the leaf fields present in the data, so unpatched fields survive.
func (r *UserRepository) MergeStatus(ctx context.Context, uid string, patch domain.StatusPatch) error {
	fields := statusFields(patch)
	if len(fields) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := r.client.Collection(collectionUsers).Doc(uid).Set(ctx,
		map[string]any{"status": fields},
		firestore.MergeAll,
	)
	if err != nil {
		return fmt.Errorf("merge status: %w", err)
	}
	return nil
}

func decodeUser(uid string, data map[string]any) *domain.User {
	st := mapField(data, "status")
	return &domain.User{
		UID:      uid,
		Username: stringField(data, "username"),
		PhotoURL: stringField(data, "photoURL"),
		Status: domain.UserStatus{
			Banned:        boolField(st, "banned"),
			Suspended:     boolField(st, "suspended"),
			Reason:        stringField(st, "reason"),
			BannedAt:      timeField(st, "bannedAt"),
			SuspendedAt:   timeField(st, "suspendedAt"),
			UnsuspendDate: timeField(st, "unsuspendDate"),
		},
	}
}

func statusFields(p domain.StatusPatch) map[string]any {
	fields := map[string]any{}
	if p.Banned != nil {
		fields["banned"] = *p.Banned
	}
	if p.Suspended != nil {
		fields["suspended"] = *p.Suspended
	}
	if p.Reason != nil {
		fields["reason"] = *p.Reason
	}
	if p.BannedAt != nil {
		fields["bannedAt"] = *p.BannedAt
	}
	if p.SuspendedAt != nil {
		fields["suspendedAt"] = *p.SuspendedAt
	}
	if p.SetUnsuspendDate {
		if p.UnsuspendDate != nil {
			fields["unsuspendDate"] = *p.UnsuspendDate
		} else {
			fields["unsuspendDate"] = nil
		}
	}
	return fields
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iskate/admin-portal/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type statusDocument struct {
	Banned        bool       `bson:"banned"`
	Suspended     bool       `bson:"suspended"`
	Reason        string     `bson:"reason"`
	BannedAt      *time.Time `bson:"banned_at,omitempty"`
	SuspendedAt   *time.Time `bson:"suspended_at,omitempty"`
	UnsuspendDate *time.Time `bson:"unsuspend_date"`
}

type userDocument struct {
	UID      string         `bson:"_id"`
	Username string         `bson:"username,omitempty"`
	PhotoURL string         `bson:"photo_url,omitempty"`
	Status   statusDocument `bson:"status"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		UID:      d.UID,
		Username: d.Username,
		PhotoURL: d.PhotoURL,
		Status: domain.UserStatus{
			Banned:        d.Status.Banned,
			Suspended:     d.Status.Suspended,
			Reason:        d.Status.Reason,
			BannedAt:      d.Status.BannedAt,
			SuspendedAt:   d.Status.SuspendedAt,
			UnsuspendDate: d.Status.UnsuspendDate,
		},
	}
}

func (r *UserRepository) FindByID(ctx context.Context, uid string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var doc userDocument
	err := r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

// MergeStatus upserts the profile and sets only the patched status fields.
func (r *UserRepository) MergeStatus(ctx context.Context, uid string, patch domain.StatusPatch) error {
	set := statusSet(patch)
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("merge status: %w", err)
	}
	return nil
}

// statusSet flattens a patch into dotted $set keys so untouched fields of the
// embedded status survive the write.
func statusSet(p domain.StatusPatch) bson.M {
	set := bson.M{}
	if p.Banned != nil {
		set["status.banned"] = *p.Banned
	}
	if p.Suspended != nil {
		set["status.suspended"] = *p.Suspended
	}
	if p.Reason != nil {
		set["status.reason"] = *p.Reason
	}
	if p.BannedAt != nil {
		set["status.banned_at"] = *p.BannedAt
	}
	if p.SuspendedAt != nil {
		set["status.suspended_at"] = *p.SuspendedAt
	}
	if p.SetUnsuspendDate {
		if p.UnsuspendDate != nil {
			set["status.unsuspend_date"] = *p.UnsuspendDate
		} else {
			set["status.unsuspend_date"] = nil
		}
	}
	return set
}

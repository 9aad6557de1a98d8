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

const collectionRoles = "user_roles"

// RoleRepository stores one document per (uid, role), keyed "uid:role".
type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

type roleDocument struct {
	ID        string     `bson:"_id"`
	UID       string     `bson:"uid"`
	Role      string     `bson:"role"`
	Active    bool       `bson:"active"`
	GrantedAt *time.Time `bson:"granted_at,omitempty"`
}

func roleID(uid string, role domain.Role) string {
	return uid + ":" + string(role)
}

func (r *RoleRepository) Find(ctx context.Context, uid string, role domain.Role) (*domain.UserRole, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var doc roleDocument
	err := r.col.FindOne(ctx, bson.M{"_id": roleID(uid, role)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.UserRole{UID: doc.UID, Role: domain.Role(doc.Role), Active: doc.Active, GrantedAt: doc.GrantedAt}, nil
}

func (r *RoleRepository) SetActive(ctx context.Context, uid string, role domain.Role, active bool, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": roleID(uid, role)},
		roleUpdate(uid, role, active, at),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

// roleUpdate keeps granted_at on revoke so the last grant stays visible.
func roleUpdate(uid string, role domain.Role, active bool, at time.Time) bson.M {
	set := bson.M{"active": active}
	if active {
		set["granted_at"] = at
	}
	return bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"uid": uid, "role": string(role)},
	}
}

// EnsureIndexes creates the lookup index on uid.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "uid", Value: 1}}})
	return err
}

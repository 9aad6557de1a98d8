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

const (
	collectionApp = "app"
	appDocID      = "main"
)

type AppRepository struct {
	col *mongo.Collection
}

func NewAppRepository(db *mongo.Database) *AppRepository {
	return &AppRepository{col: db.Collection(collectionApp)}
}

type appDocument struct {
	ID        string     `bson:"_id"`
	Active    bool       `bson:"active"`
	Version   int64      `bson:"version"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty"`
}

func (d appDocument) toDomain() *domain.AppState {
	return &domain.AppState{Active: d.Active, Version: d.Version, UpdatedAt: d.UpdatedAt, UpdatedBy: d.UpdatedBy}
}

func (r *AppRepository) Get(ctx context.Context) (*domain.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var doc appDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": appDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppStateNotFound
		}
		return nil, fmt.Errorf("find app state: %w", err)
	}
	return doc.toDomain(), nil
}

// SetActive updates the flag only when the stored version matches, bumping the
// version in the same atomic update.
func (r *AppRepository) SetActive(ctx context.Context, active bool, expectedVersion int64, by string, at time.Time) (*domain.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"active": active, "updated_at": at, "updated_by": by},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc appDocument
	err := r.col.FindOneAndUpdate(ctx, versionFilter(expectedVersion), update, opts).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update app state: %w", err)
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": appDocID})
	if err != nil {
		return nil, fmt.Errorf("count app state: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrAppStateNotFound
	}
	return nil, domain.ErrVersionConflict
}

// versionFilter treats a document without a version field as version 0.
func versionFilter(expected int64) bson.M {
	if expected == 0 {
		return bson.M{
			"_id": appDocID,
			"$or": bson.A{
				bson.M{"version": int64(0)},
				bson.M{"version": bson.M{"$exists": false}},
			},
		}
	}
	return bson.M{"_id": appDocID, "version": expected}
}

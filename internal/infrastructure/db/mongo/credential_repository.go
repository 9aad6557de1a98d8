package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iskate/admin-portal/internal/core/domain"
)

const collectionCredentials = "operator_credentials"

// CredentialRepository stores operator logins used by the local auth provider.
type CredentialRepository struct {
	col *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection(collectionCredentials)}
}

type credentialDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UID          string             `bson:"uid"`
	Email        string             `bson:"email"`
	DisplayName  string             `bson:"display_name,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
}

func (r *CredentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	doc := credentialDocument{
		UID:          cred.UID,
		Email:        normalizeEmail(cred.Email),
		DisplayName:  cred.DisplayName,
		PasswordHash: cred.PasswordHash,
		CreatedAt:    time.Now().UTC().Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCredentialExists
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// FindByEmail returns domain.ErrUserNotFound when no credential matches.
func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var doc credentialDocument
	if err := r.col.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		UID:          doc.UID,
		Email:        doc.Email,
		DisplayName:  doc.DisplayName,
		PasswordHash: doc.PasswordHash,
	}, nil
}

// EnsureIndexes makes email unique.
func (r *CredentialRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

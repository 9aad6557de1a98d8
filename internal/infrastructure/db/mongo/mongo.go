// Package mongo implements the repositories on MongoDB for deployments that
// do not use Firestore. Collections mirror the Firestore layout:
//
//	users             profile with embedded status
//	user_roles        one document per uid:role
//	app               single document "main"
//	reports           abuse reports
//	operator_credentials  local operator logins
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	// callTimeout bounds every repository round trip.
	callTimeout  = 5 * time.Second
	indexTimeout = 30 * time.Second

	appName = "iskate-admin-portal"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens a client against cfg.URI and pings the primary within
// cfg.Timeout.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(50)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Ping is the readiness check for the store.
func Ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	if err := NewRoleRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("role indexes: %w", err)
	}
	if err := NewCredentialRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("credential indexes: %w", err)
	}
	return nil
}

// Package firestore implements the repositories on Cloud Firestore, using the
// document layout the iSkate mobile app already writes:
//
//	users/{uid}                 profile with embedded status map
//	users/{uid}/roles/{role}    {active, timeStamp}
//	app/main                    {active, version, updatedAt, updatedBy}
//	reports/{id}                abuse reports
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	callTimeout = 5 * time.Second

	collectionUsers   = "users"
	collectionRoles   = "roles"
	collectionReports = "reports"
	appDocPath        = "app/main"
)

// NewClient opens a Firestore client for the app's project.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return client, nil
}

// Ping reads the app document. A missing document still proves the store is
// reachable.
func Ping(ctx context.Context, client *firestore.Client) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if _, err := client.Doc(appDocPath).Get(ctx); err != nil && !isNotFound(err) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

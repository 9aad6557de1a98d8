package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Config selects the Firebase project and service-account credentials. With
// no credentials set, Application Default Credentials are used.
type Config struct {
	ProjectID       string
	CredentialsFile string
	CredentialsJSON string
}

// NewApp initialises the Firebase Admin app shared by the Firestore store and
// the auth provider.
func NewApp(ctx context.Context, cfg Config) (*firebase.App, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	return app, nil
}

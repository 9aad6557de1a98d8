package main

import (
	"context"
	"fmt"

	fb "firebase.google.com/go/v4"
	"github.com/rs/zerolog"

	"github.com/iskate/admin-portal/internal/core/ports"
	"github.com/iskate/admin-portal/internal/infrastructure/auth/local"
	"github.com/iskate/admin-portal/internal/infrastructure/db/firestore"
	"github.com/iskate/admin-portal/internal/infrastructure/db/mongo"
	"github.com/iskate/admin-portal/internal/infrastructure/firebase"
	"github.com/iskate/admin-portal/internal/infrastructure/http/handlers"
	"github.com/iskate/admin-portal/internal/pkg/config"
)

// backend is the selected document store plus auth provider.
type backend struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	app      ports.AppRepository
	reports  ports.ReportRepository
	provider ports.AuthProvider

	// local is set when AUTH_PROVIDER=local.
	local *local.Provider

	checks  []handlers.DependencyCheck
	closers []func(context.Context) error
}

func openBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	be := &backend{}

	var app *fb.App
	if cfg.UsesFirebase() {
		var err error
		app, err = firebase.NewApp(ctx, firebase.Config{
			ProjectID:       cfg.Firebase.ProjectID,
			CredentialsFile: cfg.Firebase.CredentialsFile,
			CredentialsJSON: cfg.Firebase.CredentialsJSON,
		})
		if err != nil {
			return nil, err
		}
	}

	var err error
	switch cfg.StoreBackend {
	case config.BackendFirestore:
		err = be.openFirestore(ctx, app)
	case config.BackendMongo:
		err = be.openMongo(ctx, cfg)
	}
	if err != nil {
		be.close(log)
		return nil, err
	}

	if err := be.openProvider(ctx, cfg, app, log); err != nil {
		be.close(log)
		return nil, err
	}
	return be, nil
}

func (be *backend) openFirestore(ctx context.Context, app *fb.App) error {
	client, err := firestore.NewClient(ctx, app)
	if err != nil {
		return err
	}
	be.closers = append(be.closers, func(context.Context) error { return client.Close() })

	be.users = firestore.NewUserRepository(client)
	be.roles = firestore.NewRoleRepository(client)
	be.app = firestore.NewAppRepository(client)
	be.reports = firestore.NewReportRepository(client)
	be.checks = append(be.checks, dependencyCheck("firestore", func(ctx context.Context) error {
		return firestore.Ping(ctx, client)
	}))
	return nil
}

func (be *backend) openMongo(ctx context.Context, cfg *config.Config) error {
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.StoreTimeout,
	})
	if err != nil {
		return err
	}
	be.closers = append(be.closers, client.Disconnect)

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	be.users = mongo.NewUserRepository(db)
	be.roles = mongo.NewRoleRepository(db)
	be.app = mongo.NewAppRepository(db)
	be.reports = mongo.NewReportRepository(db)
	be.checks = append(be.checks, dependencyCheck("mongo", func(ctx context.Context) error {
		return mongo.Ping(ctx, client)
	}))

	if cfg.AuthProvider == config.ProviderLocal {
		be.local = local.NewProvider(mongo.NewCredentialRepository(db))
	}
	return nil
}

func (be *backend) openProvider(ctx context.Context, cfg *config.Config, app *fb.App, log zerolog.Logger) error {
	switch cfg.AuthProvider {
	case config.ProviderLocal:
		if be.local == nil {
			return fmt.Errorf("local auth provider needs the mongo store")
		}
		be.provider = be.local
	case config.ProviderFirebase:
		p, err := firebase.NewProvider(ctx, app, cfg.Firebase.APIKey, log.With().Str("component", "firebase").Logger())
		if err != nil {
			return err
		}
		be.provider = p
	}
	return nil
}

func (be *backend) close(log zerolog.Logger) {
	for i := len(be.closers) - 1; i >= 0; i-- {
		if err := be.closers[i](context.Background()); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}
}

func dependencyCheck(name string, ping func(context.Context) error) handlers.DependencyCheck {
	return handlers.DependencyCheck{Name: name, Ping: ping}
}

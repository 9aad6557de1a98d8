package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iskate/admin-portal/internal/api"
	"github.com/iskate/admin-portal/internal/core/service"
	"github.com/iskate/admin-portal/internal/infrastructure/db/redis"
	"github.com/iskate/admin-portal/internal/pkg/config"
	"github.com/iskate/admin-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       iSkate Admin Portal API
// @version                     1.0
// @description                 Moderation and role management for the iSkate mobile app.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "admin-portal",
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if len(os.Args) > 1 && os.Args[1] == "seed-operator" {
		err = seedOperator(ctx, cfg, log, os.Args[2:])
	} else {
		err = serve(ctx, cfg, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("admin-portal exited with error")
	}
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer be.close(log)

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.StoreTimeout,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	sessions := redis.NewSessionStore(rdb)

	roleService := service.NewRoleService(be.roles, logger.Component("roles"))
	authService := service.NewAuthService(be.provider, be.users, roleService, sessions,
		cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))

	router := api.NewRouter(api.Deps{
		Log:       logger.Component("http"),
		JWTSecret: cfg.JWTSecret,
		Auth:      authService,
		Roles:     roleService,
		Users:     service.NewUserService(be.users, roleService, cfg.RoleLookupConcurrency, logger.Component("users")),
		App:       service.NewAppService(be.app, logger.Component("app")),
		Reports:   service.NewReportService(be.reports, logger.Component("reports")),
		Sessions:  sessions,
		Health: append(be.checks, dependencyCheck("redis", func(ctx context.Context) error {
			return redis.Ping(ctx, rdb)
		})),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		LoginRatePerSecond: cfg.LoginRatePerSecond,
		LoginBurst:         cfg.LoginBurst,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("port", cfg.Port).
			Str("store", cfg.StoreBackend).
			Str("auth", cfg.AuthProvider).
			Msg("admin portal listening")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return router.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

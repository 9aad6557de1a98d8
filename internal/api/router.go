package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/iskate/admin-portal/docs"
	"github.com/iskate/admin-portal/internal/api/handler"
	"github.com/iskate/admin-portal/internal/api/middleware"
	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
	"github.com/iskate/admin-portal/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Services are built by the caller
// so the router stays independent of the storage backend.
type Deps struct {
	Log       zerolog.Logger
	JWTSecret string

	Auth     ports.AuthService
	Roles    ports.RoleService
	Users    ports.UserService
	App      ports.AppService
	Reports  ports.ReportService
	Sessions ports.SessionStore

	Health []handlers.DependencyCheck

	CORSAllowedOrigins []string
	LoginRatePerSecond float64
	LoginBurst         int
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddleware("admin_portal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users, d.Roles)
	appHandler := handler.NewAppHandler(d.App)
	reportHandler := handler.NewReportHandler(d.Reports)

	v1 := e.Group("/v1")

	// --- Auth routes ---
	v1.POST("/auth/login", authHandler.Login, loginLimiter(d.LoginRatePerSecond, d.LoginBurst))

	authenticated := middleware.Auth(d.JWTSecret, d.Sessions)

	// Signing out only needs a valid session, so a revoked admin can still do it.
	v1.POST("/auth/logout", authHandler.Logout, authenticated)

	// Every other route needs a valid session and a live admin grant.
	portal := v1.Group("",
		authenticated,
		middleware.LoadRoles(d.Roles),
		middleware.RequireRole(domain.RoleAdmin),
	)
	portal.GET("/auth/me", authHandler.Me)

	portal.GET("/users", userHandler.List)
	portal.GET("/users/:uid", userHandler.Get)
	portal.POST("/users/:uid/ban", userHandler.Ban)
	portal.POST("/users/:uid/suspend", userHandler.Suspend)
	portal.POST("/users/:uid/unban", userHandler.Unban)
	portal.POST("/users/:uid/unsuspend", userHandler.Unsuspend)
	portal.PUT("/users/:uid/roles/:role", userHandler.SetRole)

	portal.GET("/app", appHandler.Get)
	portal.PUT("/app/active", appHandler.SetActive, middleware.RequireRole(domain.RoleOwner))

	portal.GET("/reports", reportHandler.List)
	portal.POST("/reports/:id/resolve", reportHandler.Resolve)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Health...)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// loginLimiter throttles sign-in attempts per client IP.
func loginLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 10 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
		},
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

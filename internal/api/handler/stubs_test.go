package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iskate/admin-portal/internal/api/middleware"
	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

// newTestContext builds an echo context with the validator registered. An
// empty body sends no payload at all.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// signedIn marks the context as Auth and LoadRoles would.
func signedIn(c echo.Context, uid string, roles ...domain.Role) {
	c.Set(middleware.KeyUID, uid)
	c.Set(middleware.KeyRoles, domain.RoleSet(roles))
}

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, tokenID string, expiresAt time.Time) error
	meFn     func(ctx context.Context, uid string) (*domain.Principal, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.logoutFn(ctx, tokenID, expiresAt)
}

func (s *stubAuthService) Me(ctx context.Context, uid string) (*domain.Principal, error) {
	return s.meFn(ctx, uid)
}

type stubUserService struct {
	listFn    func(ctx context.Context, q ports.ListUsersQuery) (*ports.ListUsersResult, error)
	getFn     func(ctx context.Context, uid string) (*domain.UserSummary, error)
	banFn     func(ctx context.Context, actor domain.Actor, uid, reason string) (*domain.UserStatus, error)
	suspendFn func(ctx context.Context, actor domain.Actor, uid string, until time.Time, reason string) (*domain.UserStatus, error)
	clearFn   func(ctx context.Context, actor domain.Actor, uid string) (*domain.UserStatus, error)
}

func (s *stubUserService) List(ctx context.Context, q ports.ListUsersQuery) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, q)
}

func (s *stubUserService) Get(ctx context.Context, uid string) (*domain.UserSummary, error) {
	return s.getFn(ctx, uid)
}

func (s *stubUserService) Ban(ctx context.Context, actor domain.Actor, uid, reason string) (*domain.UserStatus, error) {
	return s.banFn(ctx, actor, uid, reason)
}

func (s *stubUserService) Suspend(ctx context.Context, actor domain.Actor, uid string, until time.Time, reason string) (*domain.UserStatus, error) {
	return s.suspendFn(ctx, actor, uid, until, reason)
}

func (s *stubUserService) Clear(ctx context.Context, actor domain.Actor, uid string) (*domain.UserStatus, error) {
	return s.clearFn(ctx, actor, uid)
}

type stubRoleService struct {
	setRoleFn func(ctx context.Context, actor domain.Actor, uid string, role domain.Role, active bool) (domain.RoleSet, error)
}

func (s *stubRoleService) Evaluate(context.Context, string) (domain.RoleSet, error) {
	return nil, nil
}

func (s *stubRoleService) SetRole(ctx context.Context, actor domain.Actor, uid string, role domain.Role, active bool) (domain.RoleSet, error) {
	return s.setRoleFn(ctx, actor, uid, role, active)
}

type stubAppService struct {
	getFn       func(ctx context.Context) (*domain.AppState, error)
	setActiveFn func(ctx context.Context, actor domain.Actor, active bool, version int64) (*domain.AppState, error)
}

func (s *stubAppService) Get(ctx context.Context) (*domain.AppState, error) {
	return s.getFn(ctx)
}

func (s *stubAppService) SetActive(ctx context.Context, actor domain.Actor, active bool, version int64) (*domain.AppState, error) {
	return s.setActiveFn(ctx, actor, active, version)
}

type stubReportService struct {
	listFn    func(ctx context.Context) (*ports.ReportList, error)
	resolveFn func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *stubReportService) List(ctx context.Context) (*ports.ReportList, error) {
	return s.listFn(ctx)
}

func (s *stubReportService) Resolve(ctx context.Context, actor domain.Actor, id string) error {
	return s.resolveFn(ctx, actor, id)
}

// httpCode extracts the status from an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type stubSessions struct {
	revoked map[string]bool
	err     error
}

func (s *stubSessions) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *stubSessions) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], s.err
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":      "uid-1",
		"email":    "alice@example.com",
		"username": "alice",
		"jti":      "tok-1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims()))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", &stubSessions{revoked: map[string]bool{}})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(KeyUID) != "uid-1" {
			t.Fatalf("uid not set")
		}
		if c.Get(KeyUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(KeyTokenID) != "tok-1" {
			t.Fatalf("jti not set")
		}
		if exp, _ := c.Get(KeyExpires).(time.Time); exp.IsZero() {
			t.Fatalf("exp not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	noSubject := validClaims()
	delete(noSubject, "sub")

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + signToken(t, expired)},
		{"no subject", "Bearer " + signToken(t, noSubject)},
		{"revoked session", "Bearer " + signToken(t, validClaims())},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth("secret", &stubSessions{revoked: map[string]bool{"tok-1": tc.name == "revoked session"}})
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthMiddleware_SessionStoreFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims()))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	boom := errors.New("redis down")
	mw := Auth("secret", &stubSessions{revoked: map[string]bool{}, err: boom})
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

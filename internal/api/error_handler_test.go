package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iskate/admin-portal/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{domain.ErrNotAdmin, http.StatusForbidden, "You do not currently have admin access."},
		{fmt.Errorf("set role: %w", domain.ErrForbidden), http.StatusForbidden, "access forbidden"},
		{fmt.Errorf("get user u1: %w", domain.ErrUserNotFound), http.StatusNotFound, "user not found"},
		{domain.ErrReportNotFound, http.StatusNotFound, "report not found"},
		{domain.ErrVersionConflict, http.StatusConflict, "app state changed since it was read; reload and retry"},
		{domain.ErrInvalidRole, http.StatusUnprocessableEntity, "role must be one of: admin mod owner"},
		{domain.ErrInvalidSuspension, http.StatusUnprocessableEntity, "suspension end must be in the future"},
		{echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"), http.StatusTooManyRequests, "rate limit exceeded"},
		{errors.New("firestore: deadline exceeded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Error != tc.msg {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.msg, body.Error)
		}
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
}

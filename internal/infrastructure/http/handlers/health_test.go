package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestReadiness_AllHealthy(t *testing.T) {
	e := echo.New()
	h := NewHealthDependenciesHandler(
		DependencyCheck{Name: "firestore", Ping: func(context.Context) error { return nil }},
		DependencyCheck{Name: "redis", Ping: func(context.Context) error { return nil }},
	)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_Degraded(t *testing.T) {
	e := echo.New()
	h := NewHealthDependenciesHandler(
		DependencyCheck{Name: "mongodb", Ping: func(context.Context) error { return nil }},
		DependencyCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }},
	)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Readiness(c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Dependencies["redis"].Status != "unhealthy" || resp.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

func TestReportHandler_List(t *testing.T) {
	stub := &stubReportService{
		listFn: func(ctx context.Context) (*ports.ReportList, error) {
			return &ports.ReportList{
				Pending: []*domain.Report{{
					ID:           "r1",
					Category:     "Harassment",
					Status:       domain.ReportStatusOpen,
					CreatedAt:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
					ReportedUser: domain.ReportParty{UID: "u9", Username: "troll"},
				}},
				Resolved: []*domain.Report{},
			}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/v1/reports", "")

	if err := NewReportHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Pending []struct {
			ID           string `json:"id"`
			Category     string `json:"report_category"`
			ReportedUser struct {
				Username string `json:"username"`
			} `json:"reported_user"`
		} `json:"pending"`
		Resolved []any `json:"resolved"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Pending) != 1 || resp.Pending[0].ReportedUser.Username != "troll" {
		t.Fatalf("unexpected pending: %+v", resp.Pending)
	}
	if resp.Resolved == nil {
		t.Fatalf("resolved must render as []")
	}
}

func TestReportHandler_Resolve(t *testing.T) {
	var got string
	stub := &stubReportService{
		resolveFn: func(ctx context.Context, actor domain.Actor, id string) error {
			got = id
			return nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/v1/reports/r1/resolve", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	signedIn(c, "op", domain.RoleAdmin)

	if err := NewReportHandler(stub).Resolve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || got != "r1" {
		t.Fatalf("expected 204 for r1, got %d %q", rec.Code, got)
	}
}

func TestReportHandler_Resolve_NotFound(t *testing.T) {
	stub := &stubReportService{
		resolveFn: func(ctx context.Context, actor domain.Actor, id string) error {
			return domain.ErrReportNotFound
		},
	}
	c, _ := newTestContext(http.MethodPost, "/v1/reports/nope/resolve", "")
	signedIn(c, "op", domain.RoleAdmin)

	if err := NewReportHandler(stub).Resolve(c); !errors.Is(err, domain.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

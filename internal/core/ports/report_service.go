package ports

import (
	"context"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// ReportList splits reports into pending and resolved, newest first.
type ReportList struct {
	Pending  []*domain.Report
	Resolved []*domain.Report
}

type ReportService interface {
	List(ctx context.Context) (*ReportList, error)
	Resolve(ctx context.Context, actor domain.Actor, id string) error
}

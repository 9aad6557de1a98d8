package ports

import (
	"context"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// ReportRepository reads abuse reports and closes them.
type ReportRepository interface {
	List(ctx context.Context) ([]*domain.Report, error)
	// MarkResolved returns domain.ErrReportNotFound when the report is absent.
	MarkResolved(ctx context.Context, id string) error
}

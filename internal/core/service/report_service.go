package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/iskate/admin-portal/internal/core/domain"
	"github.com/iskate/admin-portal/internal/core/ports"
)

type reportService struct {
	repo ports.ReportRepository
	log  zerolog.Logger
}

// NewReportService returns a ReportService backed by repo.
func NewReportService(repo ports.ReportRepository, log zerolog.Logger) ports.ReportService {
	return &reportService{repo: repo, log: log}
}

func (s *reportService) List(ctx context.Context) (*ports.ReportList, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	out := &ports.ReportList{Pending: []*domain.Report{}, Resolved: []*domain.Report{}}
	for _, r := range all {
		if r.IsResolved() {
			out.Resolved = append(out.Resolved, r)
		} else {
			out.Pending = append(out.Pending, r)
		}
	}
	return out, nil
}

func (s *reportService) Resolve(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.MarkResolved(ctx, id); err != nil {
		return fmt.Errorf("resolve report %s: %w", id, err)
	}
	s.log.Info().Str("actor", actor.UID).Str("report", id).Msg("report resolved")
	return nil
}

package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type ReportRepository struct {
	client *firestore.Client
}

func NewReportRepository(client *firestore.Client) *ReportRepository {
	return &ReportRepository{client: client}
}

func (r *ReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	snaps, err := r.client.Collection(collectionReports).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]*domain.Report, 0, len(snaps))
	for _, snap := range snaps {
		reports = append(reports, decodeReport(snap.Ref.ID, snap.Data()))
	}
	return reports, nil
}

// MarkResolved uses Update, which fails on a missing document instead of
// creating one.
func (r *ReportRepository) MarkResolved(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := r.client.Collection(collectionReports).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.ReportStatusResolved},
	})
	if err != nil {
		if isNotFound(err) {
			return domain.ErrReportNotFound
		}
		return fmt.Errorf("resolve report: %w", err)
	}
	return nil
}

func decodeReport(id string, data map[string]any) *domain.Report {
	created := timeField(data, "createdAt")
	if created == nil {
		created = timeField(data, "timestamp")
	}
	var createdAt time.Time
	if created != nil {
		createdAt = *created
	}

	return &domain.Report{
		ID:                id,
		Category:          stringField(data, "reportCategory"),
		AdditionalDetails: stringField(data, "additionalDetails"),
		AppVersion:        stringField(data, "appVersion"),
		Platform:          stringField(data, "platform"),
		Status:            stringField(data, "status"),
		CreatedAt:         createdAt,
		ReportedUser:      decodeParty(mapField(data, "reportedUser")),
		ReportingUser:     decodeParty(mapField(data, "reportingUser")),
	}
}

func decodeParty(m map[string]any) domain.ReportParty {
	return domain.ReportParty{
		UID:      stringField(m, "uid"),
		Username: stringField(m, "username"),
		FullName: stringField(m, "fullName"),
		Email:    stringField(m, "email"),
	}
}

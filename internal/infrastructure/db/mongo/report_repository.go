package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iskate/admin-portal/internal/core/domain"
)

const collectionReports = "reports"

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection(collectionReports)}
}

type partyDocument struct {
	UID      string `bson:"uid"`
	Username string `bson:"username"`
	FullName string `bson:"full_name"`
	Email    string `bson:"email"`
}

type reportDocument struct {
	ID                string        `bson:"_id"`
	Category          string        `bson:"report_category"`
	AdditionalDetails string        `bson:"additional_details"`
	AppVersion        string        `bson:"app_version"`
	Platform          string        `bson:"platform"`
	Status            string        `bson:"status"`
	CreatedAt         time.Time     `bson:"created_at,omitempty"`
	Timestamp         time.Time     `bson:"timestamp,omitempty"`
	ReportedUser      partyDocument `bson:"reported_user"`
	ReportingUser     partyDocument `bson:"reporting_user"`
}

func (d reportDocument) toDomain() *domain.Report {
	created := d.CreatedAt
	if created.IsZero() {
		created = d.Timestamp
	}
	return &domain.Report{
		ID:                d.ID,
		Category:          d.Category,
		AdditionalDetails: d.AdditionalDetails,
		AppVersion:        d.AppVersion,
		Platform:          d.Platform,
		Status:            d.Status,
		CreatedAt:         created,
		ReportedUser:      domain.ReportParty(d.ReportedUser),
		ReportingUser:     domain.ReportParty(d.ReportingUser),
	}
}

func (r *ReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []reportDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	reports := make([]*domain.Report, 0, len(docs))
	for _, d := range docs {
		reports = append(reports, d.toDomain())
	}
	return reports, nil
}

func (r *ReportRepository) MarkResolved(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": domain.ReportStatusResolved}},
	)
	if err != nil {
		return fmt.Errorf("resolve report: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

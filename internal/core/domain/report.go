package domain

import "time"

const (
	ReportStatusOpen     = "Open"
	ReportStatusResolved = "Resolved"
)

// ReportParty identifies the reporting or reported user on a report.
type ReportParty struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Report is a user-submitted abuse report.
type Report struct {
	ID                string      `json:"id"`
	Category          string      `json:"report_category"`
	AdditionalDetails string      `json:"additional_details"`
	AppVersion        string      `json:"app_version"`
	Platform          string      `json:"platform"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	ReportedUser      ReportParty `json:"reported_user"`
	ReportingUser     ReportParty `json:"reporting_user"`
}

// IsResolved reports whether the report has been closed. Any status other
// than Resolved counts as pending.
func (r Report) IsResolved() bool {
	return r.Status == ReportStatusResolved
}

package domain

import "time"

// AppState is the global application-active flag read by the mobile app.
// Version increases on every write and backs the optimistic check on toggle.
type AppState struct {
	Active    bool       `json:"active"`
	Version   int64      `json:"version"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdatedBy string     `json:"updated_by,omitempty"`
}

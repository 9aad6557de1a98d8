package firestore

import (
	"testing"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

func TestStatusFields_SuspendLeavesBanned(t *testing.T) {
	now := time.Now().UTC()
	until := now.Add(24 * time.Hour)
	fields := statusFields(domain.SuspendPatch(until, "spam", now))

	if _, ok := fields["banned"]; ok {
		t.Fatalf("suspend must not write banned: %v", fields)
	}
	if fields["suspended"] != true || fields["reason"] != "spam" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if got, ok := fields["unsuspendDate"].(time.Time); !ok || !got.Equal(until) {
		t.Fatalf("unsuspendDate = %v", fields["unsuspendDate"])
	}
}

func TestStatusFields_ClearWritesNullDate(t *testing.T) {
	fields := statusFields(domain.ClearPatch())

	v, ok := fields["unsuspendDate"]
	if !ok || v != nil {
		t.Fatalf("clear must write a null unsuspendDate, got %v (present=%v)", v, ok)
	}
	if fields["banned"] != false || fields["suspended"] != false || fields["reason"] != "" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestDecodeUser_Lenient(t *testing.T) {
	banned := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	data := map[string]any{
		"username": "sk8r",
		"photoURL": 42, // wrong type
		"status": map[string]any{
			"banned":        true,
			"reason":        nil,
			"bannedAt":      banned,
			"unsuspendDate": "2024-03-01T00:00:00Z",
		},
	}

	u := decodeUser("u1", data)
	if u.UID != "u1" || u.Username != "sk8r" || u.PhotoURL != "" {
		t.Fatalf("unexpected profile: %+v", u)
	}
	if !u.Status.Banned || u.Status.Suspended || u.Status.Reason != "" {
		t.Fatalf("unexpected status: %+v", u.Status)
	}
	if u.Status.BannedAt == nil || !u.Status.BannedAt.Equal(banned) {
		t.Fatalf("bannedAt = %v", u.Status.BannedAt)
	}
	if u.Status.UnsuspendDate == nil || u.Status.UnsuspendDate.Month() != time.March {
		t.Fatalf("unsuspendDate = %v", u.Status.UnsuspendDate)
	}
}

func TestDecodeUser_NoStatus(t *testing.T) {
	u := decodeUser("u2", map[string]any{"username": "fresh"})
	if !u.Status.IsActive() {
		t.Fatalf("user without status map should be active")
	}
}

func TestRoleFields(t *testing.T) {
	at := time.Now()
	if f := roleFields(false, at); len(f) != 1 || f["active"] != false {
		t.Fatalf("revoke fields = %v", f)
	}
	if f := roleFields(true, at); f["active"] != true || f["timeStamp"] != at {
		t.Fatalf("grant fields = %v", f)
	}
}

func TestDecodeReport_CreatedAtFallback(t *testing.T) {
	ts := time.Date(2023, 9, 9, 9, 0, 0, 0, time.UTC)
	r := decodeReport("r1", map[string]any{
		"status":         "Open",
		"reportCategory": "Harassment",
		"timestamp":      ts,
		"reportedUser":   map[string]any{"uid": "bad", "fullName": "Bad Actor"},
	})

	if !r.CreatedAt.Equal(ts) {
		t.Fatalf("created_at = %v, want %v", r.CreatedAt, ts)
	}
	if r.ReportedUser.UID != "bad" || r.ReportedUser.FullName != "Bad Actor" {
		t.Fatalf("unexpected reported user: %+v", r.ReportedUser)
	}
	if r.IsResolved() {
		t.Fatalf("open report reported as resolved")
	}
}

func TestDecodeAppState_MissingVersionIsZero(t *testing.T) {
	s := decodeAppState(map[string]any{"active": true})
	if !s.Active || s.Version != 0 {
		t.Fatalf("unexpected state: %+v", s)
	}
}

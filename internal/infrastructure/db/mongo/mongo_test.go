package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/iskate/admin-portal/internal/core/domain"
)

func TestStatusSet_Ban(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	set := statusSet(domain.BanPatch("spam", now))

	if set["status.banned"] != true || set["status.reason"] != "spam" {
		t.Fatalf("unexpected set: %v", set)
	}
	if v, ok := set["status.unsuspend_date"]; !ok || v != nil {
		t.Fatalf("unsuspend_date must be written as null, got %v (present=%v)", v, ok)
	}
	if _, ok := set["status.suspended"]; ok {
		t.Fatalf("ban must not write suspended")
	}
}

func TestStatusSet_Clear(t *testing.T) {
	set := statusSet(domain.ClearPatch())

	want := bson.M{
		"status.banned":         false,
		"status.suspended":      false,
		"status.reason":         "",
		"status.unsuspend_date": nil,
	}
	if len(set) != len(want) {
		t.Fatalf("unexpected keys: %v", set)
	}
	for k, v := range want {
		if set[k] != v {
			t.Fatalf("%s = %v, want %v", k, set[k], v)
		}
	}
}

func TestRoleUpdate_RevokeKeepsGrantTime(t *testing.T) {
	update := roleUpdate("u1", domain.RoleMod, false, time.Now())

	set := update["$set"].(bson.M)
	if set["active"] != false {
		t.Fatalf("expected active=false, got %v", set["active"])
	}
	if _, ok := set["granted_at"]; ok {
		t.Fatalf("revoke must not touch granted_at")
	}
	onInsert := update["$setOnInsert"].(bson.M)
	if onInsert["uid"] != "u1" || onInsert["role"] != "mod" {
		t.Fatalf("unexpected $setOnInsert: %v", onInsert)
	}
}

func TestVersionFilter_ZeroMatchesMissingField(t *testing.T) {
	f := versionFilter(0)
	if _, ok := f["$or"]; !ok {
		t.Fatalf("version 0 must also match documents without a version: %v", f)
	}
	if f := versionFilter(4); f["version"] != int64(4) {
		t.Fatalf("unexpected filter: %v", f)
	}
}

func TestReportDocument_CreatedAtFallsBackToTimestamp(t *testing.T) {
	ts := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	r := reportDocument{ID: "r1", Timestamp: ts}.toDomain()

	if !r.CreatedAt.Equal(ts) {
		t.Fatalf("created_at = %v, want %v", r.CreatedAt, ts)
	}
}

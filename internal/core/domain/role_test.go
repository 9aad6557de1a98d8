package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{"admin": RoleAdmin, " MOD ": RoleMod, "Owner": RoleOwner}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil || got != want {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseRole("superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSortByRank(t *testing.T) {
	sets := []RoleSet{{RoleMod}, {RoleOwner}, {RoleAdmin}, {}}
	SortByRank(sets)

	want := []int{3, 2, 1, 0}
	for i, s := range sets {
		if s.Rank() != want[i] {
			t.Fatalf("position %d: rank %d, want %d (%v)", i, s.Rank(), want[i], sets)
		}
	}
}

func TestSortByRank_Stable(t *testing.T) {
	first := RoleSet{RoleAdmin}
	second := RoleSet{RoleAdmin, RoleMod}
	sets := []RoleSet{{}, first, second}
	SortByRank(sets)

	if len(sets[0]) != 1 || len(sets[1]) != 2 {
		t.Fatalf("equal ranks reordered: %v", sets)
	}
}

func TestRoleSet_RankIsHighestMember(t *testing.T) {
	if got := (RoleSet{RoleMod, RoleOwner}).Rank(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := (RoleSet{}).Rank(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCanManageRole(t *testing.T) {
	cases := []struct {
		name   string
		actor  RoleSet
		target Role
		want   bool
	}{
		{"owner grants admin", RoleSet{RoleOwner}, RoleAdmin, true},
		{"owner alone cannot grant mod", RoleSet{RoleOwner}, RoleMod, false},
		{"admin grants mod", RoleSet{RoleAdmin}, RoleMod, true},
		{"admin cannot grant admin", RoleSet{RoleAdmin}, RoleAdmin, false},
		{"admin cannot touch owner", RoleSet{RoleAdmin}, RoleOwner, false},
		{"owner cannot touch owner", RoleSet{RoleOwner, RoleAdmin}, RoleOwner, false},
		{"mod grants nothing", RoleSet{RoleMod}, RoleMod, false},
		{"no roles", RoleSet{}, RoleMod, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanManageRole(tc.actor, tc.target); got != tc.want {
				t.Fatalf("CanManageRole(%v, %s) = %v, want %v", tc.actor, tc.target, got, tc.want)
			}
		})
	}
}

func TestManageableRoles(t *testing.T) {
	got := ManageableRoles(RoleSet{RoleOwner, RoleAdmin})
	if len(got) != 2 || got[0] != RoleAdmin || got[1] != RoleMod {
		t.Fatalf("unexpected manageable roles: %v", got)
	}
}

package domain

import (
	"sort"
	"strings"
	"time"
)

// Role is a named permission flag held by a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleMod   Role = "mod"
	RoleOwner Role = "owner"
)

// Roles is the closed set of role names, in lookup order.
var Roles = []Role{RoleAdmin, RoleMod, RoleOwner}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleMod, RoleOwner:
		return r, nil
	}
	return "", ErrInvalidRole
}

// Rank orders roles for display and sorting: owner(3) > admin(2) > mod(1).
// Anything else ranks 0.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMod:
		return 1
	default:
		return 0
	}
}

// UserRole is the persisted (uid, role) record. A role is held only when
// Active is true.
type UserRole struct {
	UID       string     `json:"uid"`
	Role      Role       `json:"role"`
	Active    bool       `json:"active"`
	GrantedAt *time.Time `json:"granted_at,omitempty"`
}

// RoleSet is the effective set of roles a user holds.
type RoleSet []Role

// Has reports whether r is a member of the set.
func (s RoleSet) Has(r Role) bool {
	for _, held := range s {
		if held == r {
			return true
		}
	}
	return false
}

// Rank is the highest rank among the held roles, 0 for an empty set.
func (s RoleSet) Rank() int {
	best := 0
	for _, r := range s {
		if r.Rank() > best {
			best = r.Rank()
		}
	}
	return best
}

// Strings returns the role names in set order.
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// SortByRank sorts role sets by descending rank. The sort is stable so equal
// ranks keep their input order.
func SortByRank(sets []RoleSet) {
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].Rank() > sets[j].Rank()
	})
}

// CanManageRole reports whether a holder of actor may grant or revoke target.
// owner manages admin, admin manages mod, and owner itself is never managed
// through this system.
func CanManageRole(actor RoleSet, target Role) bool {
	switch target {
	case RoleAdmin:
		return actor.Has(RoleOwner)
	case RoleMod:
		return actor.Has(RoleAdmin)
	default:
		return false
	}
}

// ManageableRoles lists the roles actor may grant or revoke.
func ManageableRoles(actor RoleSet) []Role {
	out := make([]Role, 0, len(Roles))
	for _, r := range Roles {
		if CanManageRole(actor, r) {
			out = append(out, r)
		}
	}
	return out
}

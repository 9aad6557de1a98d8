package domain

import "time"

// UserStatus is the moderation state embedded in a user's profile. Banned and
// Suspended are independent flags; both may be set at once.
type UserStatus struct {
	Banned        bool       `json:"banned"`
	Suspended     bool       `json:"suspended"`
	Reason        string     `json:"reason"`
	BannedAt      *time.Time `json:"banned_at,omitempty"`
	SuspendedAt   *time.Time `json:"suspended_at,omitempty"`
	UnsuspendDate *time.Time `json:"unsuspend_date"`
}

// IsActive reports whether the user is neither banned nor suspended.
func (s UserStatus) IsActive() bool {
	return !s.Banned && !s.Suspended
}

// StatusPatch is a partial status write. Nil fields are left untouched by the
// store; UnsuspendDate is written (possibly as null) only when
// SetUnsuspendDate is true.
type StatusPatch struct {
	Banned           *bool
	Suspended        *bool
	Reason           *string
	BannedAt         *time.Time
	SuspendedAt      *time.Time
	SetUnsuspendDate bool
	UnsuspendDate    *time.Time
}

// BanPatch bans the user and clears any reinstatement date. Suspended is left
// as is.
func BanPatch(reason string, now time.Time) StatusPatch {
	return StatusPatch{
		Banned:           boolPtr(true),
		Reason:           &reason,
		BannedAt:         &now,
		SetUnsuspendDate: true,
	}
}

// SuspendPatch suspends the user until the given time. Banned is left as is.
func SuspendPatch(until time.Time, reason string, now time.Time) StatusPatch {
	return StatusPatch{
		Suspended:        boolPtr(true),
		Reason:           &reason,
		SuspendedAt:      &now,
		SetUnsuspendDate: true,
		UnsuspendDate:    &until,
	}
}

// ClearPatch resets both flags, the reason and the reinstatement date. It backs
// both unban and unsuspend.
func ClearPatch() StatusPatch {
	empty := ""
	return StatusPatch{
		Banned:           boolPtr(false),
		Suspended:        boolPtr(false),
		Reason:           &empty,
		SetUnsuspendDate: true,
	}
}

// Apply returns the status that results from merging p over s.
func (s UserStatus) Apply(p StatusPatch) UserStatus {
	out := s
	if p.Banned != nil {
		out.Banned = *p.Banned
	}
	if p.Suspended != nil {
		out.Suspended = *p.Suspended
	}
	if p.Reason != nil {
		out.Reason = *p.Reason
	}
	if p.BannedAt != nil {
		t := *p.BannedAt
		out.BannedAt = &t
	}
	if p.SuspendedAt != nil {
		t := *p.SuspendedAt
		out.SuspendedAt = &t
	}
	if p.SetUnsuspendDate {
		out.UnsuspendDate = nil
		if p.UnsuspendDate != nil {
			t := *p.UnsuspendDate
			out.UnsuspendDate = &t
		}
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// MeetingFilter narrows a meeting listing within one company.
// Zero-valued fields are ignored.
type MeetingFilter struct {
	RoomID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// DefaultMeetingLimit caps listings when the caller does not ask for a limit.
const DefaultMeetingLimit = 100

// EffectiveLimit returns Limit clamped to [1, DefaultMeetingLimit].
func (f MeetingFilter) EffectiveLimit() int {
	if f.Limit <= 0 || f.Limit > DefaultMeetingLimit {
		return DefaultMeetingLimit
	}
	return f.Limit
}

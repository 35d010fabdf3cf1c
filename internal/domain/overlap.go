package domain

import (
	"time"

	"github.com/google/uuid"
)

// Overlaps reports whether a proposed window [start, end) conflicts with an
// existing window [existingStart, existingEnd). A conflict is any of:
//
//  1. the proposed start falls inside the existing window;
//  2. the proposed end falls inside the existing window (end == existingEnd counts);
//  3. the proposed window contains the existing one.
//
// Back-to-back windows (start == existingEnd or end == existingStart) do not conflict.
func Overlaps(start, end, existingStart, existingEnd time.Time) bool {
	startsInside := !start.Before(existingStart) && start.Before(existingEnd)
	endsInside := end.After(existingStart) && !end.After(existingEnd)
	contains := !start.After(existingStart) && !end.Before(existingEnd)

	return startsInside || endsInside || contains
}

// FindConflicts returns the meetings of roomID that conflict with [start, end).
func FindConflicts(existing []*Meeting, roomID uuid.UUID, start, end time.Time) []*Meeting {
	var conflicts []*Meeting
	for _, m := range existing {
		if m.RoomID == roomID && m.Overlaps(start, end) {
			conflicts = append(conflicts, m)
		}
	}
	return conflicts
}

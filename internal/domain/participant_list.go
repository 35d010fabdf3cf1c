package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Changeset is the difference between the persisted participants of a
// meeting and its current participants.
type Changeset struct {
	Added   []Participant
	Removed []Participant
	// Updated holds persisted participants whose response changed.
	Updated []Participant
}

// IsEmpty reports whether there is nothing to persist.
func (c Changeset) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Updated) == 0
}

// ParticipantList is the ordered participant collection of one meeting.
// It keeps the last persisted snapshot; the delta is computed by diffing the
// snapshot against the current items, never tracked incrementally.
type ParticipantList struct {
	items     []Participant
	persisted []Participant
}

// NewParticipantList creates a list whose initial items are treated as
// already persisted.
func NewParticipantList(initial []Participant) ParticipantList {
	return ParticipantList{
		items:     slices.Clone(initial),
		persisted: slices.Clone(initial),
	}
}

// Add appends p. Duplicate checks are the caller's job (see Exists).
func (l *ParticipantList) Add(p Participant) {
	l.items = append(l.items, p)
}

// Exists reports whether the list already holds p, either as the same record
// or as another record for the same user.
func (l *ParticipantList) Exists(p Participant) bool {
	return slices.ContainsFunc(l.items, func(item Participant) bool {
		return item.ID == p.ID || item.UserID == p.UserID
	})
}

// Remove drops the participant with p's id. Removing an absent participant is a no-op.
func (l *ParticipantList) Remove(p Participant) {
	l.items = slices.DeleteFunc(l.items, func(item Participant) bool {
		return item.ID == p.ID
	})
}

// Find returns the participant with the given record id.
func (l *ParticipantList) Find(id uuid.UUID) (Participant, bool) {
	i := slices.IndexFunc(l.items, func(item Participant) bool { return item.ID == id })
	if i < 0 {
		return Participant{}, false
	}
	return l.items[i], true
}

// FindByUser returns the participant referencing userID.
func (l *ParticipantList) FindByUser(userID uuid.UUID) (Participant, bool) {
	i := slices.IndexFunc(l.items, func(item Participant) bool { return item.UserID == userID })
	if i < 0 {
		return Participant{}, false
	}
	return l.items[i], true
}

// replace swaps the stored record with the same id for p.
func (l *ParticipantList) replace(p Participant) {
	for i := range l.items {
		if l.items[i].ID == p.ID {
			l.items[i] = p
			return
		}
	}
}

// Items returns a copy of the current participants in insertion order.
func (l *ParticipantList) Items() []Participant {
	return slices.Clone(l.items)
}

// Len returns the number of current participants.
func (l *ParticipantList) Len() int {
	return len(l.items)
}

// Changes diffs the current items against the persisted snapshot.
func (l *ParticipantList) Changes() Changeset {
	persisted := make(map[uuid.UUID]Participant, len(l.persisted))
	for _, p := range l.persisted {
		persisted[p.ID] = p
	}
	current := make(map[uuid.UUID]struct{}, len(l.items))

	var cs Changeset
	for _, p := range l.items {
		current[p.ID] = struct{}{}
		old, ok := persisted[p.ID]
		if !ok {
			cs.Added = append(cs.Added, p)
			continue
		}
		if !sameResponse(old.Accept, p.Accept) {
			cs.Updated = append(cs.Updated, p)
		}
	}
	for _, p := range l.persisted {
		if _, ok := current[p.ID]; !ok {
			cs.Removed = append(cs.Removed, p)
		}
	}
	return cs
}

// Commit marks the current items as persisted.
func (l *ParticipantList) Commit() {
	l.persisted = slices.Clone(l.items)
}

func sameResponse(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

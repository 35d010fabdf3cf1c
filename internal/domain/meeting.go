package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is the aggregate root of a room booking. It owns its participants
// and guarantees that a user participates at most once.
type Meeting struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	CreatorID uuid.UUID
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time

	participants ParticipantList
}

// NewMeeting creates a meeting with a fresh id and no participants.
func NewMeeting(companyID, creatorID, roomID uuid.UUID, start, end time.Time) *Meeting {
	return &Meeting{
		ID:        NewID(),
		CompanyID: companyID,
		CreatorID: creatorID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
}

// RestoreMeeting rebuilds a meeting loaded from storage. The given
// participants are treated as persisted.
func RestoreMeeting(m Meeting, participants []Participant) *Meeting {
	m.participants = NewParticipantList(participants)
	return &m
}

// AddParticipant adds p to the meeting. It returns ErrParticipantExists when
// the record or its user is already part of the meeting.
func (m *Meeting) AddParticipant(p Participant) error {
	if p.MeetingID != m.ID {
		return NewValidationError("meeting_id", "participant belongs to another meeting")
	}
	if m.participants.Exists(p) {
		return ErrParticipantExists
	}
	m.participants.Add(p)
	return nil
}

// Invite builds a participation for userID and adds it.
func (m *Meeting) Invite(userID uuid.UUID) (Participant, error) {
	p := NewParticipant(m.CompanyID, m.ID, userID)
	if err := m.AddParticipant(p); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// RemoveParticipant drops the participant record with the given id.
// It reports whether the record was part of the meeting.
func (m *Meeting) RemoveParticipant(participantID uuid.UUID) (Participant, bool) {
	p, ok := m.participants.Find(participantID)
	if !ok {
		return Participant{}, false
	}
	m.participants.Remove(p)
	return p, true
}

// Respond records userID's answer to the invitation.
func (m *Meeting) Respond(userID uuid.UUID, accept bool) (Participant, error) {
	p, ok := m.participants.FindByUser(userID)
	if !ok {
		return Participant{}, NewKindError(ErrNotFound, "Participant not found")
	}
	p.Accept = &accept
	m.participants.replace(p)
	return p, nil
}

// Participants returns the current participants in insertion order.
func (m *Meeting) Participants() []Participant {
	return m.participants.Items()
}

// ParticipantCount returns the number of current participants.
func (m *Meeting) ParticipantCount() int {
	return m.participants.Len()
}

// HasParticipant reports whether userID participates in the meeting.
func (m *Meeting) HasParticipant(userID uuid.UUID) bool {
	_, ok := m.participants.FindByUser(userID)
	return ok
}

// ParticipantChanges returns the participant delta since the last commit.
func (m *Meeting) ParticipantChanges() Changeset {
	return m.participants.Changes()
}

// CommitParticipants marks the current participants as persisted.
func (m *Meeting) CommitParticipants() {
	m.participants.Commit()
}

// Overlaps reports whether the meeting's window conflicts with [start, end).
func (m *Meeting) Overlaps(start, end time.Time) bool {
	return Overlaps(start, end, m.StartTime, m.EndTime)
}

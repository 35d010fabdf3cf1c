package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant links a user to a meeting. It is owned by a single Meeting.
type Participant struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	UserID    uuid.UUID
	MeetingID uuid.UUID
	// Accept is nil until the user responds.
	Accept    *bool
	CreatedAt time.Time
}

// NewParticipant builds a not yet persisted participation of userID in meetingID.
func NewParticipant(companyID, meetingID, userID uuid.UUID) Participant {
	return Participant{
		ID:        NewID(),
		CompanyID: companyID,
		UserID:    userID,
		MeetingID: meetingID,
		CreatedAt: time.Now().UTC(),
	}
}

// Response maps the Accept tri-state to a named value.
func (p Participant) Response() ParticipantResponse {
	switch {
	case p.Accept == nil:
		return ParticipantResponsePending
	case *p.Accept:
		return ParticipantResponseAccepted
	default:
		return ParticipantResponseDeclined
	}
}

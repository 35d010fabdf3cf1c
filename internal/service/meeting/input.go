package meeting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// CreateMeetingInput holds the parameters for booking a room.
type CreateMeetingInput struct {
	RoomID         uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	ParticipantIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateMeetingInput) Validate(limits Limits) error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "required"})
	}
	if !i.StartTime.IsZero() && !i.EndTime.IsZero() {
		if !i.StartTime.Before(i.EndTime) {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be after start_time"})
		} else if limits.MaxDuration > 0 && i.EndTime.Sub(i.StartTime) > limits.MaxDuration {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: fmt.Sprintf("meeting longer than %s", limits.MaxDuration)})
		}
	}
	if limits.MaxParticipants > 0 && len(i.ParticipantIDs) > limits.MaxParticipants {
		errs = append(errs, domain.FieldError{Field: "participant_ids", Message: fmt.Sprintf("max %d participants", limits.MaxParticipants)})
	}
	for _, id := range i.ParticipantIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "participant_ids", Message: "invalid identifier"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddParticipantInput holds the parameters for inviting a user to a meeting.
type AddParticipantInput struct {
	MeetingID uuid.UUID
	UserID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddParticipantInput) Validate() error {
	var errs []domain.FieldError
	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meeting_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RespondInput holds the caller's answer to an invitation.
type RespondInput struct {
	MeetingID uuid.UUID
	Accept    bool
}

// Validate checks all fields.
func (i RespondInput) Validate() error {
	if i.MeetingID == uuid.Nil {
		return domain.NewValidationError("meeting_id", "required")
	}
	return nil
}

// ListMeetingsInput narrows a meeting listing.
type ListMeetingsInput struct {
	RoomID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListMeetingsInput) Validate() error {
	var errs []domain.FieldError
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListMeetingsInput) filter() domain.MeetingFilter {
	return domain.MeetingFilter{RoomID: i.RoomID, From: i.From, To: i.To, Limit: i.Limit}
}

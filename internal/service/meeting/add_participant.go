package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// AddParticipant invites a user to an existing meeting. Only an admin or
// the meeting's creator may do so.
func (s *Service) AddParticipant(ctx context.Context, input AddParticipantInput) (*domain.Participant, error) {
	userID, companyID, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.actor(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	target, err := s.getUser(ctx, companyID, input.UserID)
	if err != nil {
		return nil, err
	}

	m, err := s.getMeeting(ctx, companyID, input.MeetingID)
	if err != nil {
		return nil, err
	}

	if !domain.CanManageMeeting(actor, m) {
		return nil, domain.ErrUserNotAdmin
	}
	if !target.Active {
		return nil, domain.ErrUserNotActive
	}
	if s.limits.MaxParticipants > 0 && m.ParticipantCount() >= s.limits.MaxParticipants {
		return nil, domain.NewValidationError("participants", fmt.Sprintf("max %d participants", s.limits.MaxParticipants))
	}

	p, err := m.Invite(target.ID)
	if err != nil {
		return nil, err
	}

	if err := s.meetings.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("meeting.AddParticipant save: %w", err)
	}

	s.log.InfoContext(ctx, "participant added",
		slog.String("company_id", companyID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.String("participant_id", p.ID.String()),
		slog.String("user_id", target.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return &p, nil
}

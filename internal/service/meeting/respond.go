package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// RespondToMeeting records the caller's acceptance or refusal of an
// invitation. Only the invited user can answer for themself.
func (s *Service) RespondToMeeting(ctx context.Context, input RespondInput) (*domain.Participant, error) {
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

	m, err := s.getMeeting(ctx, companyID, input.MeetingID)
	if err != nil {
		return nil, err
	}

	p, err := m.Respond(actor.ID, input.Accept)
	if err != nil {
		return nil, err
	}

	if err := s.meetings.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("meeting.RespondToMeeting save: %w", err)
	}

	s.log.InfoContext(ctx, "meeting response recorded",
		slog.String("company_id", companyID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.String("participant_id", p.ID.String()),
		slog.String("response", p.Response().String()),
	)

	return &p, nil
}

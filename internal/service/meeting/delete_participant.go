package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

var errRemoveParticipantNotAllowed = domain.NewKindError(domain.ErrSystemNotAllowed, "Only admins can remove other participants")

// DeleteParticipant removes a participant record. Admins may remove anyone,
// other users only themselves.
func (s *Service) DeleteParticipant(ctx context.Context, participantID uuid.UUID) error {
	userID, companyID, err := identity(ctx)
	if err != nil {
		return err
	}

	if participantID == uuid.Nil {
		return domain.NewValidationError("participant_id", "required")
	}

	actor, err := s.actor(ctx, companyID, userID)
	if err != nil {
		return err
	}

	p, err := s.meetings.FindParticipantByID(ctx, companyID, participantID)
	if err != nil {
		return lookupErr(err, "Participant")
	}

	if !domain.CanRemoveParticipant(actor, *p) {
		return errRemoveParticipantNotAllowed
	}

	if err := s.meetings.DeleteParticipant(ctx, *p); err != nil {
		return fmt.Errorf("meeting.DeleteParticipant: %w", err)
	}

	s.log.InfoContext(ctx, "participant deleted",
		slog.String("company_id", companyID.String()),
		slog.String("meeting_id", p.MeetingID.String()),
		slog.String("participant_id", p.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}

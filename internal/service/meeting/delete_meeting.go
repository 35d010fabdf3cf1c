package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// DeleteMeeting cancels a meeting together with its participants.
// Only an admin or the meeting's creator may do so.
func (s *Service) DeleteMeeting(ctx context.Context, meetingID uuid.UUID) error {
	userID, companyID, err := identity(ctx)
	if err != nil {
		return err
	}

	if meetingID == uuid.Nil {
		return domain.NewValidationError("meeting_id", "required")
	}

	m, err := s.getMeeting(ctx, companyID, meetingID)
	if err != nil {
		return err
	}

	actor, err := s.actor(ctx, companyID, userID)
	if err != nil {
		return err
	}

	if !domain.CanManageMeeting(actor, m) {
		return domain.ErrUserNotAdmin
	}

	if err := s.meetings.Delete(ctx, m); err != nil {
		return fmt.Errorf("meeting.DeleteMeeting: %w", err)
	}

	s.log.InfoContext(ctx, "meeting deleted",
		slog.String("company_id", companyID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}

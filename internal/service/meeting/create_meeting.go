package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// CreateMeeting books a room for the caller and invites the given users.
// Nothing is persisted unless every participant is valid.
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error) {
	userID, companyID, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	creator, err := s.actor(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	var m *domain.Meeting
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The share lock holds off a concurrent deactivation until commit,
		// so the cascade always sees this meeting.
		room, err := s.rooms.GetByIDForShare(txCtx, companyID, input.RoomID)
		if err != nil {
			return lookupErr(err, "Room")
		}
		if !room.Active {
			return domain.ErrRoomNotActive
		}

		if err := s.checkSchedule(txCtx, companyID, room.ID, input.StartTime, input.EndTime); err != nil {
			return err
		}

		m = domain.NewMeeting(companyID, creator.ID, room.ID, input.StartTime, input.EndTime)

		for _, participantID := range input.ParticipantIDs {
			u, err := s.getUser(txCtx, companyID, participantID)
			if err != nil {
				return err
			}
			if !u.Active {
				return domain.ErrUserNotActive
			}
			if _, err := m.Invite(u.ID); err != nil {
				return err
			}
		}

		if err := s.meetings.Create(txCtx, m); err != nil {
			return fmt.Errorf("create meeting: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("meeting.CreateMeeting: %w", err)
	}

	s.log.InfoContext(ctx, "meeting created",
		slog.String("company_id", companyID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.String("room_id", m.RoomID.String()),
		slog.String("creator_id", creator.ID.String()),
		slog.Int("participants", m.ParticipantCount()),
	)

	return m, nil
}

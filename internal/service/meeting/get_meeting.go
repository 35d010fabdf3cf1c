package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// Details is a meeting with the room and the users it references.
type Details struct {
	Meeting *domain.Meeting
	Room    *domain.Room
	Creator *domain.User
	// Users holds the creator and every participant, keyed by user id.
	Users map[uuid.UUID]domain.User
}

// GetMeeting returns one meeting of the caller's company. The room and the
// referenced users are loaded concurrently.
func (s *Service) GetMeeting(ctx context.Context, meetingID uuid.UUID) (*Details, error) {
	_, companyID, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if meetingID == uuid.Nil {
		return nil, domain.NewValidationError("meeting_id", "required")
	}

	m, err := s.getMeeting(ctx, companyID, meetingID)
	if err != nil {
		return nil, err
	}

	userIDs := lo.Uniq(append(
		[]uuid.UUID{m.CreatorID},
		lo.Map(m.Participants(), func(p domain.Participant, _ int) uuid.UUID { return p.UserID })...,
	))

	var (
		room  *domain.Room
		users []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.rooms.GetByID(gctx, companyID, m.RoomID)
		if err != nil {
			return lookupErr(err, "Room")
		}
		room = r
		return nil
	})
	g.Go(func() error {
		us, err := s.users.ListByIDs(gctx, companyID, userIDs)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		users = us
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("meeting.GetMeeting: %w", err)
	}

	byID := lo.KeyBy(users, func(u domain.User) uuid.UUID { return u.ID })
	creator, ok := byID[m.CreatorID]
	if !ok {
		return nil, domain.NewKindError(domain.ErrNotFound, "User not found")
	}

	return &Details{
		Meeting: m,
		Room:    room,
		Creator: &creator,
		Users:   byID,
	}, nil
}

package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// UpdateRoom renames and/or (de)activates a room. Admin only.
// Deactivating a room cancels every meeting booked in it.
func (s *Service) UpdateRoom(ctx context.Context, input UpdateRoomInput) (*domain.Room, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	room, err := s.getRoom(ctx, actor.CompanyID, input.RoomID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		room.Name = domain.NormalizeName(*input.Name)
	}
	if input.Active != nil {
		room.Active = *input.Active
	}

	updated, cancelled, err := s.rooms.Update(ctx, room)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, domain.NewKindError(domain.ErrAlreadyExists, "Room name already used")
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NewKindError(domain.ErrNotFound, "Room not found")
		}
		return nil, fmt.Errorf("room.UpdateRoom: %w", err)
	}

	s.log.InfoContext(ctx, "room updated",
		slog.String("company_id", updated.CompanyID.String()),
		slog.String("room_id", updated.ID.String()),
		slog.Bool("active", updated.Active),
		slog.Int64("cancelled_meetings", cancelled),
	)

	return updated, nil
}

package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// DeleteRoom removes a room together with its meetings. Admin only.
func (s *Service) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return err
	}

	if roomID == uuid.Nil {
		return domain.NewValidationError("room_id", "required")
	}

	if err := s.rooms.Delete(ctx, actor.CompanyID, roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewKindError(domain.ErrNotFound, "Room not found")
		}
		return fmt.Errorf("room.DeleteRoom: %w", err)
	}

	s.log.InfoContext(ctx, "room deleted",
		slog.String("company_id", actor.CompanyID.String()),
		slog.String("room_id", roomID.String()),
	)

	return nil
}

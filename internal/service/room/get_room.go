package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/pkg/ctxutil"
)

// GetRoom returns a room of the caller's company.
func (s *Service) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	_, companyID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room_id", "required")
	}
	return s.getRoom(ctx, companyID, roomID)
}

// ListRooms returns every room of the caller's company, ordered by name.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	_, companyID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rooms, err := s.rooms.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("room.ListRooms: %w", err)
	}
	return rooms, nil
}

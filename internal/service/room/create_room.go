package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// CreateRoom adds an active room to the caller's company. Admin only.
func (s *Service) CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.rooms.Create(ctx, &domain.Room{
		ID:        uuid.New(),
		CompanyID: actor.CompanyID,
		Name:      domain.NormalizeName(input.Name),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewKindError(domain.ErrAlreadyExists, "Room name already used")
		}
		return nil, fmt.Errorf("room.CreateRoom: %w", err)
	}

	s.log.InfoContext(ctx, "room created",
		slog.String("company_id", created.CompanyID.String()),
		slog.String("room_id", created.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, nil
}

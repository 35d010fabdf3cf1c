// Package room implements room administration for a company.
package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/pkg/ctxutil"
)

//go:generate moq -out user_repo_mock_test.go -pkg room . userRepo
//go:generate moq -out room_repo_mock_test.go -pkg room . roomRepo

type userRepo interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error)
}

// roomRepo.Update deletes the room's meetings when the room ends up inactive
// and reports how many were cancelled.
type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, int64, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// Service provides room operations.
type Service struct {
	users userRepo
	rooms roomRepo
	log   *slog.Logger
}

// NewService creates a new Room service.
func NewService(log *slog.Logger, users userRepo, rooms roomRepo) *Service {
	return &Service{
		users: users,
		rooms: rooms,
		log:   log.With("service", "room"),
	}
}

// requireAdmin resolves the caller and checks they may administer the company.
// Deactivated users are refused before the role check.
func (s *Service) requireAdmin(ctx context.Context) (*domain.User, error) {
	userID, companyID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	actor, err := s.users.GetByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewKindError(domain.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !actor.Active {
		return nil, domain.ErrUserNotActive
	}

	if !domain.CanManageCompany(actor) {
		return nil, domain.ErrUserNotAdmin
	}
	return actor, nil
}

func (s *Service) getRoom(ctx context.Context, companyID, roomID uuid.UUID) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, companyID, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewKindError(domain.ErrNotFound, "Room not found")
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

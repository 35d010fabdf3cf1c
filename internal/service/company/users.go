package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// CreateUser adds a user to the caller's company. Admin only.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("company.CreateUser: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		CompanyID:    actor.CompanyID,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("company.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("company_id", created.CompanyID.String()),
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, nil
}

// ListUsers returns the users of the caller's company.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	actor, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("company.ListUsers: %w", err)
	}
	return users, nil
}

// SetUserActive activates or deactivates a user. Admin only; an admin
// cannot deactivate themself.
func (s *Service) SetUserActive(ctx context.Context, input SetUserActiveInput) (*domain.User, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.UserID == actor.ID && !input.Active {
		return nil, domain.NewKindError(domain.ErrSystemNotAllowed, "Cannot deactivate yourself")
	}

	updated, err := s.users.SetActive(ctx, actor.CompanyID, input.UserID, input.Active)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewKindError(domain.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("company.SetUserActive: %w", err)
	}

	s.log.InfoContext(ctx, "user active flag changed",
		slog.String("company_id", updated.CompanyID.String()),
		slog.String("user_id", updated.ID.String()),
		slog.Bool("active", updated.Active),
		slog.String("actor_id", actor.ID.String()),
	)

	return updated, nil
}

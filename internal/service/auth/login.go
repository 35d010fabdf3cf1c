package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetroom-backend/internal/auth"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// Login authenticates a user with email + password and issues an access token.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.passwords.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login compare password: %w", err)
	}

	// Checked after the password so inactive accounts are not revealed to guessers.
	if !user.Active {
		return nil, domain.ErrUserNotActive
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.CompanyID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("company_id", user.CompanyID.String()),
	)

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   s.jwt.TTL(),
		User:        user,
	}, nil
}

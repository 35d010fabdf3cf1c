package auth

import (
	"context"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// ValidateToken checks an access token and returns the identity it carries.
// Any invalid or expired token yields ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrUnauthorized
	}

	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", "error", err)
		return Identity{}, domain.ErrUnauthorized
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return Identity{}, domain.ErrUnauthorized
	}

	return Identity{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      role,
	}, nil
}

package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}

// Identity is the authenticated caller extracted from an access token.
type Identity struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      domain.UserRole
}

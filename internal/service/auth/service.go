package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/auth"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out password_hasher_mock_test.go -pkg auth . passwordHasher
//go:generate moq -out jwt_manager_mock_test.go -pkg auth . jwtManager

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// passwordHasher verifies a password against its stored hash.
type passwordHasher interface {
	Compare(hash, password string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID, companyID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
	TTL() time.Duration
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	passwords passwordHasher
	jwt       jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	passwords passwordHasher,
	jwt jwtManager,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		passwords: passwords,
		jwt:       jwt,
	}
}

// Package company implements tenant onboarding and user administration.
package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/pkg/ctxutil"
)

//go:generate moq -out company_repo_mock_test.go -pkg company . companyRepo
//go:generate moq -out user_repo_mock_test.go -pkg company . userRepo
//go:generate moq -out password_hasher_mock_test.go -pkg company . passwordHasher
//go:generate moq -out tx_manager_mock_test.go -pkg company . txManager

type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
}

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	SetActive(ctx context.Context, companyID, id uuid.UUID, active bool) (*domain.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides company and user administration.
type Service struct {
	companies companyRepo
	users     userRepo
	passwords passwordHasher
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Company service.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	users userRepo,
	passwords passwordHasher,
	tx txManager,
) *Service {
	return &Service{
		companies: companies,
		users:     users,
		passwords: passwords,
		tx:        tx,
		log:       log.With("service", "company"),
	}
}

// caller resolves the authenticated user. Deactivated users are refused.
func (s *Service) caller(ctx context.Context) (*domain.User, error) {
	userID, companyID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewKindError(domain.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !u.Active {
		return nil, domain.ErrUserNotActive
	}
	return u, nil
}

func (s *Service) requireAdmin(ctx context.Context) (*domain.User, error) {
	actor, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if !domain.CanManageCompany(actor) {
		return nil, domain.ErrUserNotAdmin
	}
	return actor, nil
}

var errEmailTaken = domain.NewKindError(domain.ErrAlreadyExists, "Email already registered")

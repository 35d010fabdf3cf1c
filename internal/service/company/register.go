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

// RegisterResult is returned by RegisterCompany.
type RegisterResult struct {
	Company *domain.Company
	Admin   *domain.User
}

// RegisterCompany creates a company and its first admin in one transaction.
// A taken email yields ErrAlreadyExists.
func (s *Service) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*RegisterResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("company.RegisterCompany: %w", err)
	}

	var result RegisterResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()

		c, err := s.companies.Create(txCtx, &domain.Company{
			ID:        uuid.New(),
			Name:      input.CompanyName,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		admin, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			CompanyID:    c.ID,
			Email:        input.AdminEmail,
			Name:         input.AdminName,
			PasswordHash: hash,
			Role:         domain.UserRoleAdmin,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		result = RegisterResult{Company: c, Admin: admin}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("company.RegisterCompany: %w", err)
	}

	s.log.InfoContext(ctx, "company registered",
		slog.String("company_id", result.Company.ID.String()),
		slog.String("admin_id", result.Admin.ID.String()),
	)

	return &result, nil
}

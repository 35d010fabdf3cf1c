// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "company_id", "email", "name", "password_hash", "role", "active", "created_at", "updated_at",
}

type row struct {
	ID           uuid.UUID `db:"id"`
	CompanyID    uuid.UUID `db:"company_id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.CompanyID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.Active, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joinColumns())

	var out row
	if err := postgres.Get(ctx, q, &out, stmt); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a user of the given company.
// A user of another company is reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID, "id": id})

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

// GetByEmail returns a user by email address across all companies.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"email": email})

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return out.toDomain(), nil
}

// ListByCompany returns every user of a company ordered by name.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("name", "id")

	return r.list(ctx, query, companyID)
}

// ListByIDs returns the users of a company whose id is in ids.
// Unknown ids are skipped.
func (r *Repo) ListByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID, "id": ids}).
		OrderBy("name", "id")

	return r.list(ctx, query, companyID)
}

// SetActive updates the active flag and returns the updated user.
func (r *Repo) SetActive(ctx context.Context, companyID, id uuid.UUID, active bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Update(table).
		Set("active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"company_id": companyID, "id": id}).
		Suffix("RETURNING " + joinColumns())

	var out row
	if err := postgres.Get(ctx, q, &out, stmt); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain(), nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, companyID uuid.UUID) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list users of company %s: %w", companyID, err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		users = append(users, *rw.toDomain())
	}
	return users, nil
}

func joinColumns() string {
	return postgres.JoinColumns(columns)
}

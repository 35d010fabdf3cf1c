// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

const table = "companies"

var columns = []string{"id", "name", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Company {
	return &domain.Company{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a company.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.CreatedAt).
		Suffix("RETURNING " + postgres.JoinColumns(columns))

	var out row
	if err := postgres.Get(ctx, q, &out, stmt); err != nil {
		return nil, postgres.MapError(err, "company", c.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return out.toDomain(), nil
}

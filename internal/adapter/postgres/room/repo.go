// Package room implements the Room repository using PostgreSQL.
// Deactivating a room through Update removes every meeting booked in it
// within the same transaction.
package room

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

const table = "rooms"

var columns = []string{"id", "company_id", "name", "active", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	CompanyID uuid.UUID `db:"company_id"`
	Name      string    `db:"name"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Room {
	return &domain.Room{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Name:      r.Name,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// meetingCleaner removes the meetings of a room.
type meetingCleaner interface {
	DeleteByRoom(ctx context.Context, companyID, roomID uuid.UUID) (int64, error)
}

// Repo provides room persistence backed by PostgreSQL.
type Repo struct {
	db       postgres.Querier
	tx       *postgres.TxManager
	meetings meetingCleaner
}

// New creates a new room repository. meetings is used for the
// deactivation cascade.
func New(db postgres.DB, meetings meetingCleaner) *Repo {
	return &Repo{
		db:       db,
		tx:       postgres.NewTxManager(db),
		meetings: meetings,
	}
}

// Create inserts a room. A duplicate name within the company yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(room.ID, room.CompanyID, room.Name, room.Active, room.CreatedAt, room.UpdatedAt).
		Suffix("RETURNING " + postgres.JoinColumns(columns))

	var out row
	if err := postgres.Get(ctx, q, &out, stmt); err != nil {
		return nil, postgres.MapError(err, "room", room.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a room of the given company.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Room, error) {
	return r.get(ctx, companyID, id, "")
}

// GetByIDForShare returns a room and holds a share lock on its row until
// the surrounding transaction ends. A concurrent Update of the room waits
// for that transaction, so a meeting booked under the lock is always seen
// by the deactivation cascade. Must be called inside RunInTx.
func (r *Repo) GetByIDForShare(ctx context.Context, companyID, id uuid.UUID) (*domain.Room, error) {
	return r.get(ctx, companyID, id, "FOR SHARE")
}

func (r *Repo) get(ctx context.Context, companyID, id uuid.UUID, lock string) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID, "id": id})
	if lock != "" {
		query = query.Suffix(lock)
	}

	var out row
	if err := postgres.Get(ctx, q, &out, query); err != nil {
		return nil, postgres.MapError(err, "room", id)
	}
	return out.toDomain(), nil
}

// List returns every room of a company ordered by name.
func (r *Repo) List(ctx context.Context, companyID uuid.UUID) ([]domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("name")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list rooms of company %s: %w", companyID, err)
	}

	rooms := make([]domain.Room, 0, len(rows))
	for _, rw := range rows {
		rooms = append(rooms, *rw.toDomain())
	}
	return rooms, nil
}

// Update persists name and active. When the room ends up inactive its
// meetings are deleted in the same transaction; the number of deleted
// meetings is returned.
func (r *Repo) Update(ctx context.Context, room *domain.Room) (*domain.Room, int64, error) {
	var (
		updated   *domain.Room
		cancelled int64
	)

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		stmt := postgres.Builder.Update(table).
			Set("name", room.Name).
			Set("active", room.Active).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"company_id": room.CompanyID, "id": room.ID}).
			Suffix("RETURNING " + postgres.JoinColumns(columns))

		var out row
		if err := postgres.Get(ctx, q, &out, stmt); err != nil {
			return postgres.MapError(err, "room", room.ID)
		}
		updated = out.toDomain()

		if updated.Active {
			return nil
		}

		n, err := r.meetings.DeleteByRoom(ctx, updated.CompanyID, updated.ID)
		if err != nil {
			return fmt.Errorf("cancel meetings of room %s: %w", updated.ID, err)
		}
		cancelled = n
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return updated, cancelled, nil
}

// Delete removes a room; its meetings and participants go with it
// through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Delete(table).
		Where(sq.Eq{"company_id": companyID, "id": id})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "room", id)
	}
	if n == 0 {
		return fmt.Errorf("room %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

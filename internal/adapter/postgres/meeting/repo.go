// Package meeting implements the Meeting aggregate repository using PostgreSQL.
// A meeting is stored in the meetings table and its participants in the
// participants table; Save persists only the participant changeset.
package meeting

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/samber/lo"

	postgres "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

const (
	meetingsTable     = "meetings"
	participantsTable = "participants"
)

var (
	meetingColumns     = []string{"id", "company_id", "creator_id", "room_id", "start_time", "end_time", "created_at"}
	participantColumns = []string{"id", "company_id", "meeting_id", "user_id", "accept", "created_at"}
)

type meetingRow struct {
	ID        uuid.UUID `db:"id"`
	CompanyID uuid.UUID `db:"company_id"`
	CreatorID uuid.UUID `db:"creator_id"`
	RoomID    uuid.UUID `db:"room_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	CreatedAt time.Time `db:"created_at"`
}

func (r meetingRow) toDomain(participants []domain.Participant) *domain.Meeting {
	return domain.RestoreMeeting(domain.Meeting{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		CreatorID: r.CreatorID,
		RoomID:    r.RoomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		CreatedAt: r.CreatedAt,
	}, participants)
}

type participantRow struct {
	ID        uuid.UUID `db:"id"`
	CompanyID uuid.UUID `db:"company_id"`
	MeetingID uuid.UUID `db:"meeting_id"`
	UserID    uuid.UUID `db:"user_id"`
	Accept    *bool     `db:"accept"`
	CreatedAt time.Time `db:"created_at"`
}

func (r participantRow) toDomain() domain.Participant {
	return domain.Participant{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		MeetingID: r.MeetingID,
		UserID:    r.UserID,
		Accept:    r.Accept,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides meeting persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	tx *postgres.TxManager
}

// New creates a new meeting repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// ---------------------------------------------------------------------------
// Meetings
// ---------------------------------------------------------------------------

// Create inserts the meeting and all of its participants atomically.
// Overlapping bookings of the same room are rejected by the database with
// domain.ErrScheduleConflict.
func (r *Repo) Create(ctx context.Context, m *domain.Meeting) error {
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		stmt := postgres.Builder.Insert(meetingsTable).
			Columns(meetingColumns...).
			Values(m.ID, m.CompanyID, m.CreatorID, m.RoomID, m.StartTime, m.EndTime, m.CreatedAt)

		if _, err := postgres.Exec(ctx, q, stmt); err != nil {
			return postgres.MapError(err, "meeting", m.ID)
		}

		return insertParticipants(ctx, q, m.Participants())
	})
	if err != nil {
		return err
	}

	m.CommitParticipants()
	return nil
}

// GetByID returns a meeting of the given company with its participants.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Meeting, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(meetingColumns...).
		From(meetingsTable).
		Where(sq.Eq{"company_id": companyID, "id": id})

	var mr meetingRow
	if err := postgres.Get(ctx, q, &mr, query); err != nil {
		return nil, postgres.MapError(err, "meeting", id)
	}

	byMeeting, err := r.participantsOf(ctx, q, []uuid.UUID{mr.ID})
	if err != nil {
		return nil, err
	}

	return mr.toDomain(byMeeting[mr.ID]), nil
}

// FindOverlapping returns the meetings of a room whose window conflicts with
// [start, end). A stored meeting [s, e) conflicts when any of these holds:
// start falls inside it (s <= start < e), end falls inside it
// (s < end <= e), or the new window contains it (start <= s and e <= end).
// Participants are not loaded.
func (r *Repo) FindOverlapping(ctx context.Context, companyID, roomID uuid.UUID, start, end time.Time) ([]*domain.Meeting, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(meetingColumns...).
		From(meetingsTable).
		Where(sq.Eq{"company_id": companyID, "room_id": roomID}).
		Where(sq.Or{
			sq.And{sq.LtOrEq{"start_time": start}, sq.Gt{"end_time": start}},
			sq.And{sq.Lt{"start_time": end}, sq.GtOrEq{"end_time": end}},
			sq.And{sq.GtOrEq{"start_time": start}, sq.LtOrEq{"end_time": end}},
		}).
		OrderBy("start_time")

	var rows []meetingRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("find overlapping meetings in room %s: %w", roomID, err)
	}

	return lo.Map(rows, func(mr meetingRow, _ int) *domain.Meeting {
		return mr.toDomain(nil)
	}), nil
}

// List returns the meetings of a company matching filter, ordered by start
// time, with participants loaded.
func (r *Repo) List(ctx context.Context, companyID uuid.UUID, filter domain.MeetingFilter) ([]*domain.Meeting, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(meetingColumns...).
		From(meetingsTable).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("start_time", "id").
		Limit(uint64(filter.EffectiveLimit()))

	if filter.RoomID != nil {
		query = query.Where(sq.Eq{"room_id": *filter.RoomID})
	}
	if filter.From != nil {
		query = query.Where(sq.Gt{"end_time": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.Lt{"start_time": *filter.To})
	}

	var rows []meetingRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("list meetings of company %s: %w", companyID, err)
	}
	if len(rows) == 0 {
		return []*domain.Meeting{}, nil
	}

	ids := lo.Map(rows, func(mr meetingRow, _ int) uuid.UUID { return mr.ID })
	byMeeting, err := r.participantsOf(ctx, q, ids)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(mr meetingRow, _ int) *domain.Meeting {
		return mr.toDomain(byMeeting[mr.ID])
	}), nil
}

// Save persists the participant changes accumulated on m since it was
// loaded or last saved, then commits them on the aggregate.
func (r *Repo) Save(ctx context.Context, m *domain.Meeting) error {
	changes := m.ParticipantChanges()
	if changes.IsEmpty() {
		return nil
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if len(changes.Removed) > 0 {
			ids := lo.Map(changes.Removed, func(p domain.Participant, _ int) uuid.UUID { return p.ID })
			stmt := postgres.Builder.Delete(participantsTable).
				Where(sq.Eq{"meeting_id": m.ID, "id": ids})
			if _, err := postgres.Exec(ctx, q, stmt); err != nil {
				return postgres.MapError(err, "meeting", m.ID)
			}
		}

		for _, p := range changes.Updated {
			stmt := postgres.Builder.Update(participantsTable).
				Set("accept", p.Accept).
				Where(sq.Eq{"id": p.ID})
			if _, err := postgres.Exec(ctx, q, stmt); err != nil {
				return postgres.MapError(err, "participant", p.ID)
			}
		}

		return insertParticipants(ctx, q, changes.Added)
	})
	if err != nil {
		return err
	}

	m.CommitParticipants()
	return nil
}

// Delete removes a meeting; its participants go with it through
// ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, m *domain.Meeting) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Delete(meetingsTable).
		Where(sq.Eq{"company_id": m.CompanyID, "id": m.ID})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "meeting", m.ID)
	}
	if n == 0 {
		return fmt.Errorf("meeting %s: %w", m.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByRoom removes every meeting booked in a room and returns how many
// were deleted.
func (r *Repo) DeleteByRoom(ctx context.Context, companyID, roomID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Delete(meetingsTable).
		Where(sq.Eq{"company_id": companyID, "room_id": roomID})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return 0, postgres.MapError(err, "room", roomID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Participants
// ---------------------------------------------------------------------------

// FindParticipantByID returns a participant record of the given company.
func (r *Repo) FindParticipantByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder.Select(participantColumns...).
		From(participantsTable).
		Where(sq.Eq{"company_id": companyID, "id": id})

	var pr participantRow
	if err := postgres.Get(ctx, q, &pr, query); err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}

	p := pr.toDomain()
	return &p, nil
}

// DeleteParticipant removes one participant record.
func (r *Repo) DeleteParticipant(ctx context.Context, p domain.Participant) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stmt := postgres.Builder.Delete(participantsTable).
		Where(sq.Eq{"company_id": p.CompanyID, "id": p.ID})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "participant", p.ID)
	}
	if n == 0 {
		return fmt.Errorf("participant %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) participantsOf(ctx context.Context, q postgres.Querier, meetingIDs []uuid.UUID) (map[uuid.UUID][]domain.Participant, error) {
	query := postgres.Builder.Select(participantColumns...).
		From(participantsTable).
		Where(sq.Eq{"meeting_id": meetingIDs}).
		OrderBy("created_at", "id")

	var rows []participantRow
	if err := postgres.Select(ctx, q, &rows, query); err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}

	grouped := lo.GroupBy(rows, func(pr participantRow) uuid.UUID { return pr.MeetingID })
	out := make(map[uuid.UUID][]domain.Participant, len(grouped))
	for id, prs := range grouped {
		out[id] = lo.Map(prs, func(pr participantRow, _ int) domain.Participant { return pr.toDomain() })
	}
	return out, nil
}

func insertParticipants(ctx context.Context, q postgres.Querier, participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	stmt := postgres.Builder.Insert(participantsTable).Columns(participantColumns...)
	for _, p := range participants {
		stmt = stmt.Values(p.ID, p.CompanyID, p.MeetingID, p.UserID, p.Accept, p.CreatedAt)
	}

	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		if postgres.ConstraintName(err) == "participants_meeting_id_user_id_key" {
			return fmt.Errorf("insert participants: %w", domain.ErrParticipantExists)
		}
		return postgres.MapError(err, "participant", participants[0].ID)
	}
	return nil
}

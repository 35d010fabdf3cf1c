//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCompany inserts a company.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()

	c := domain.Company{ID: uuid.New(), Name: "Company " + uniqueSuffix(), CreatedAt: now()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name, created_at) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}

// SeedUser inserts an active user of the given role into a company.
func SeedUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	u := domain.User{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Email:        "user-" + suffix + "@example.com",
		Name:         "User " + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		Role:         role,
		Active:       true,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, company_id, email, name, password_hash, role, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.CompanyID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedRoom inserts an active room into a company.
func SeedRoom(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID) domain.Room {
	t.Helper()

	ts := now()
	r := domain.Room{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      "Room " + uniqueSuffix(),
		Active:    true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO rooms (id, company_id, name, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.CompanyID, r.Name, r.Active, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoom: %v", err)
	}
	return r
}

// SeedMeeting books [start, end) in a room on behalf of creator.
func SeedMeeting(t *testing.T, pool *pgxpool.Pool, creator domain.User, roomID uuid.UUID, start, end time.Time) domain.Meeting {
	t.Helper()

	m := domain.Meeting{
		ID:        uuid.New(),
		CompanyID: creator.CompanyID,
		CreatorID: creator.ID,
		RoomID:    roomID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO meetings (id, company_id, creator_id, room_id, start_time, end_time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.CompanyID, m.CreatorID, m.RoomID, m.StartTime, m.EndTime, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeeting: %v", err)
	}
	return m
}

// CountMeetings returns how many meetings are booked in a room.
func CountMeetings(t *testing.T, pool *pgxpool.Pool, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM meetings WHERE room_id = $1`, roomID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountMeetings: %v", err)
	}
	return n
}

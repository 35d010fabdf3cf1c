// Package meeting implements the booking use cases: creating meetings,
// managing their participants and removing them.
package meeting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/pkg/ctxutil"
)

//go:generate moq -out user_repo_mock_test.go -pkg meeting . userRepo
//go:generate moq -out room_repo_mock_test.go -pkg meeting . roomRepo
//go:generate moq -out meeting_repo_mock_test.go -pkg meeting . meetingRepo
//go:generate moq -out tx_manager_mock_test.go -pkg meeting . txManager

type userRepo interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error)
	ListByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.User, error)
}

type roomRepo interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Room, error)
	GetByIDForShare(ctx context.Context, companyID, id uuid.UUID) (*domain.Room, error)
}

type meetingRepo interface {
	Create(ctx context.Context, m *domain.Meeting) error
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Meeting, error)
	FindOverlapping(ctx context.Context, companyID, roomID uuid.UUID, start, end time.Time) ([]*domain.Meeting, error)
	List(ctx context.Context, companyID uuid.UUID, filter domain.MeetingFilter) ([]*domain.Meeting, error)
	Save(ctx context.Context, m *domain.Meeting) error
	Delete(ctx context.Context, m *domain.Meeting) error
	FindParticipantByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Participant, error)
	DeleteParticipant(ctx context.Context, p domain.Participant) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits bounds what a single booking may request.
type Limits struct {
	MaxDuration     time.Duration
	MaxParticipants int
}

// Service provides meeting booking operations.
type Service struct {
	users    userRepo
	rooms    roomRepo
	meetings meetingRepo
	tx       txManager
	limits   Limits
	log      *slog.Logger
}

// NewService creates a new Meeting service.
func NewService(
	log *slog.Logger,
	users userRepo,
	rooms roomRepo,
	meetings meetingRepo,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		users:    users,
		rooms:    rooms,
		meetings: meetings,
		tx:       tx,
		limits:   limits,
		log:      log.With("service", "meeting"),
	}
}

// identity returns the caller's user and company ids.
func identity(ctx context.Context) (uuid.UUID, uuid.UUID, error) {
	userID, companyID, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, domain.ErrUnauthorized
	}
	return userID, companyID, nil
}

// lookupErr turns a repository miss into a NotFound with a readable message.
func lookupErr(err error, what string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewKindError(domain.ErrNotFound, what+" not found")
	}
	return fmt.Errorf("get %s: %w", what, err)
}

func (s *Service) getUser(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, companyID, userID)
	if err != nil {
		return nil, lookupErr(err, "User")
	}
	return u, nil
}

// actor resolves the calling user. Deactivated users may not act.
func (s *Service) actor(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error) {
	u, err := s.getUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if !u.Active {
		return nil, domain.ErrUserNotActive
	}
	return u, nil
}

func (s *Service) getMeeting(ctx context.Context, companyID, meetingID uuid.UUID) (*domain.Meeting, error) {
	m, err := s.meetings.GetByID(ctx, companyID, meetingID)
	if err != nil {
		return nil, lookupErr(err, "Meeting")
	}
	return m, nil
}

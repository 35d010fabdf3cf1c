package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// checkSchedule fails with domain.ErrScheduleConflict when [start, end)
// conflicts with a meeting already booked in the room. The repository
// narrows the candidates; domain.FindConflicts has the final word.
func (s *Service) checkSchedule(ctx context.Context, companyID, roomID uuid.UUID, start, end time.Time) error {
	existing, err := s.meetings.FindOverlapping(ctx, companyID, roomID, start, end)
	if err != nil {
		return fmt.Errorf("find overlapping meetings: %w", err)
	}
	if len(domain.FindConflicts(existing, roomID, start, end)) > 0 {
		return domain.ErrScheduleConflict
	}
	return nil
}

package meeting

import (
	"context"
	"fmt"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

// ListMeetings returns the caller's company meetings ordered by start time.
func (s *Service) ListMeetings(ctx context.Context, input ListMeetingsInput) ([]*domain.Meeting, error) {
	_, companyID, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	meetings, err := s.meetings.List(ctx, companyID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("meeting.ListMeetings: %w", err)
	}
	return meetings, nil
}

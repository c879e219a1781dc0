package timeevent

import (
	"context"
	"fmt"

	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type TimeEventServiceImpl struct {
	timeevent.TimeEventRepository
	clock clock.Clock
}

func NewTimeEventService(eventRepository timeevent.TimeEventRepository, clk clock.Clock) timeevent.TimeEventService {
	return &TimeEventServiceImpl{
		TimeEventRepository: eventRepository,
		clock:               clk,
	}
}

func (s *TimeEventServiceImpl) callerFromContext(ctx context.Context) (userID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ = claims["user_id"].(string)
	companyID, _ = claims["company_id"].(string)
	return userID, companyID, nil
}

// Create implements timeevent.TimeEventService. Events are recorded as-is;
// pairing and reconciliation happen at report time, never at ingest.
func (s *TimeEventServiceImpl) Create(ctx context.Context, req timeevent.CreateTimeEventRequest) (timeevent.TimeEvent, error) {
	if err := req.Validate(); err != nil {
		return timeevent.TimeEvent{}, err
	}

	userID, companyID, err := s.callerFromContext(ctx)
	if err != nil {
		return timeevent.TimeEvent{}, err
	}

	now := s.clock.Now()
	timestamp := now
	if req.Timestamp != nil {
		timestamp = req.Timestamp.UTC()
	}
	if timestamp.After(now) {
		return timeevent.TimeEvent{}, timeevent.ErrTimestampInFuture
	}

	event := timeevent.TimeEvent{
		ID:             uuid.NewString(),
		UserID:         userID,
		CompanyID:      companyID,
		Type:           req.EventType,
		Timestamp:      timestamp,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ApprovalStatus: timeevent.ApprovalAuto,
	}

	// Backdated punches are kept but flagged for review.
	if req.Timestamp != nil {
		event.ApprovalStatus = timeevent.ApprovalPending
	}

	created, err := s.TimeEventRepository.Create(ctx, event)
	if err != nil {
		return timeevent.TimeEvent{}, fmt.Errorf("failed to create time event: %w", err)
	}

	return created, nil
}

// ListMy implements timeevent.TimeEventService.
func (s *TimeEventServiceImpl) ListMy(ctx context.Context, filter timeevent.MyTimeEventsFilter) ([]timeevent.TimeEvent, int64, error) {
	userID, _, err := s.callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	events, total, err := s.TimeEventRepository.ListMy(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time events: %w", err)
	}
	return events, total, nil
}

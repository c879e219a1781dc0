package timeevent

import (
	"context"
	"time"
)

type TimeEventRepository interface {
	Create(ctx context.Context, event TimeEvent) (TimeEvent, error)
	// ListByUserBetween returns events for a user with from <= timestamp <= to,
	// ordered ascending by timestamp.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]TimeEvent, error)
	ListMy(ctx context.Context, userID string, filter MyTimeEventsFilter) ([]TimeEvent, int64, error)
}

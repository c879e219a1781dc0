package timeevent

import "context"

type TimeEventService interface {
	Create(ctx context.Context, req CreateTimeEventRequest) (TimeEvent, error)
	ListMy(ctx context.Context, filter MyTimeEventsFilter) ([]TimeEvent, int64, error)
}

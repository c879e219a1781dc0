package timeevent

import "errors"

var (
	ErrTimeEventNotFound = errors.New("time event not found")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrTimestampInFuture = errors.New("event timestamp is in the future")
)

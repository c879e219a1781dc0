package timeevent

import (
	"time"

	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

type CreateTimeEventRequest struct {
	EventType EventType `json:"event_type"`
	// Timestamp is optional; the server clock is used when omitted.
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
}

func (r CreateTimeEventRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.EventType.Valid() {
		errs = append(errs, validator.ValidationError{Field: "event_type", Message: "must be one of clock_in, clock_out, break_start, break_end, work_pause, work_resume"})
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "latitude and longitude must be provided together"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MyTimeEventsFilter struct {
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

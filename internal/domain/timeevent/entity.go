package timeevent

import "time"

// EventType is the closed set of raw clock event kinds. work_pause and
// work_resume are kiosk synonyms for break_start and break_end.
type EventType string

const (
	EventClockIn    EventType = "clock_in"
	EventClockOut   EventType = "clock_out"
	EventBreakStart EventType = "break_start"
	EventBreakEnd   EventType = "break_end"
	EventWorkPause  EventType = "work_pause"
	EventWorkResume EventType = "work_resume"
)

var EventTypeValues = []string{
	string(EventClockIn),
	string(EventClockOut),
	string(EventBreakStart),
	string(EventBreakEnd),
	string(EventWorkPause),
	string(EventWorkResume),
}

func (t EventType) Valid() bool {
	switch t {
	case EventClockIn, EventClockOut, EventBreakStart, EventBreakEnd, EventWorkPause, EventWorkResume:
		return true
	}
	return false
}

// Opening reports whether the event starts a worked interval.
func (t EventType) Opening() bool {
	switch t {
	case EventClockIn, EventWorkResume, EventBreakEnd:
		return true
	}
	return false
}

// Closing reports whether the event ends a worked interval.
func (t EventType) Closing() bool {
	switch t {
	case EventClockOut, EventWorkPause, EventBreakStart:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalAuto    ApprovalStatus = "auto"
	ApprovalPending ApprovalStatus = "pending"
)

// TimeEvent is a single raw punch. Events are append-only: the report path
// only ever reads them.
type TimeEvent struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	CompanyID      string         `json:"company_id"`
	Type           EventType      `json:"event_type"`
	Timestamp      time.Time      `json:"timestamp"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time      `json:"-"`
}

package report

import (
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
)

// accumulateWorked pairs sequential opening/closing events into worked
// intervals and returns the total in minutes. Events must be pre-sorted
// ascending by timestamp.
//
// A second opening event while an interval is already open is ignored; it
// neither resets nor extends the open interval. An interval still open after
// the last event (employee still clocked in, or a missing clock-out) is
// capped at min(now, windowEnd); a non-positive remainder contributes
// nothing, so a stale open punch in a window that closed before "now" never
// subtracts time.
func accumulateWorked(events []timeevent.TimeEvent, windowEnd, now time.Time) float64 {
	var openAt *time.Time
	var total float64

	for i := range events {
		ev := &events[i]
		switch {
		case ev.Type.Opening():
			if openAt == nil {
				openAt = &ev.Timestamp
			}
		case ev.Type.Closing():
			if openAt != nil {
				total += ev.Timestamp.Sub(*openAt).Minutes()
				openAt = nil
			}
		}
	}

	if openAt != nil {
		capAt := now
		if windowEnd.Before(capAt) {
			capAt = windowEnd
		}
		if open := capAt.Sub(*openAt); open > 0 {
			total += open.Minutes()
		}
	}

	return total
}

// eventsWithin slices the pre-fetched, timestamp-ordered event list down to
// those falling inside [start, end].
func eventsWithin(events []timeevent.TimeEvent, start, end time.Time) []timeevent.TimeEvent {
	var out []timeevent.TimeEvent
	for _, ev := range events {
		if ev.Timestamp.Before(start) {
			continue
		}
		if ev.Timestamp.After(end) {
			break
		}
		out = append(out, ev)
	}
	return out
}

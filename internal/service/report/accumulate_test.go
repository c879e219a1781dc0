package report

import (
	"testing"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/stretchr/testify/assert"
)

func eventAt(kind timeevent.EventType, hour, min int) timeevent.TimeEvent {
	return timeevent.TimeEvent{
		Type:      kind,
		Timestamp: time.Date(2024, time.January, 15, hour, min, 0, 0, time.UTC),
	}
}

var (
	testWindowEnd = time.Date(2024, time.January, 16, 2, 59, 59, 999*int(time.Millisecond), time.UTC)
	testNow       = time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
)

func TestAccumulateWorked_PairsSequentialIntervals(t *testing.T) {
	events := []timeevent.TimeEvent{
		eventAt(timeevent.EventClockIn, 8, 0),
		eventAt(timeevent.EventClockOut, 12, 0),
		eventAt(timeevent.EventClockIn, 13, 0),
		eventAt(timeevent.EventClockOut, 17, 0),
	}

	assert.Equal(t, 480.0, accumulateWorked(events, testWindowEnd, testNow))
}

func TestAccumulateWorked_BreakSynonymsCloseAndReopen(t *testing.T) {
	events := []timeevent.TimeEvent{
		eventAt(timeevent.EventClockIn, 8, 0),
		eventAt(timeevent.EventWorkPause, 12, 0),
		eventAt(timeevent.EventWorkResume, 13, 0),
		eventAt(timeevent.EventClockOut, 17, 0),
	}

	assert.Equal(t, 480.0, accumulateWorked(events, testWindowEnd, testNow))
}

func TestAccumulateWorked_RedundantOpenIgnored(t *testing.T) {
	events := []timeevent.TimeEvent{
		eventAt(timeevent.EventClockIn, 8, 0),
		eventAt(timeevent.EventClockIn, 9, 0),
		eventAt(timeevent.EventClockOut, 17, 0),
	}

	// The second open neither resets nor extends: 08:00-17:00.
	assert.Equal(t, 540.0, accumulateWorked(events, testWindowEnd, testNow))
}

func TestAccumulateWorked_DanglingCloseIgnored(t *testing.T) {
	events := []timeevent.TimeEvent{
		eventAt(timeevent.EventClockOut, 8, 0),
		eventAt(timeevent.EventClockIn, 9, 0),
		eventAt(timeevent.EventClockOut, 10, 0),
	}

	assert.Equal(t, 60.0, accumulateWorked(events, testWindowEnd, testNow))
}

func TestAccumulateWorked_OpenIntervalCappedAtNow(t *testing.T) {
	// Still clocked in; "now" is inside the window.
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	events := []timeevent.TimeEvent{eventAt(timeevent.EventClockIn, 8, 0)}

	assert.Equal(t, 240.0, accumulateWorked(events, testWindowEnd, now))
}

func TestAccumulateWorked_OpenIntervalCappedAtWindowEnd(t *testing.T) {
	// Querying a past day long after its window closed: the open interval
	// stops at the window end, not at "now".
	windowEnd := time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC)
	events := []timeevent.TimeEvent{eventAt(timeevent.EventClockIn, 8, 0)}

	assert.Equal(t, 600.0, accumulateWorked(events, windowEnd, testNow))
}

func TestAccumulateWorked_NegativeTailContributesNothing(t *testing.T) {
	// Open event after the cap instant must not subtract time.
	windowEnd := time.Date(2024, time.January, 15, 7, 0, 0, 0, time.UTC)
	events := []timeevent.TimeEvent{eventAt(timeevent.EventClockIn, 8, 0)}

	assert.Equal(t, 0.0, accumulateWorked(events, windowEnd, testNow))
}

func TestAccumulateWorked_Empty(t *testing.T) {
	assert.Equal(t, 0.0, accumulateWorked(nil, testWindowEnd, testNow))
}

func TestEventsWithin(t *testing.T) {
	events := []timeevent.TimeEvent{
		eventAt(timeevent.EventClockIn, 2, 0),
		eventAt(timeevent.EventClockIn, 8, 0),
		eventAt(timeevent.EventClockOut, 17, 0),
	}
	start := time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC)

	got := eventsWithin(events, start, testWindowEnd)

	assert.Len(t, got, 2)
	assert.Equal(t, 8, got[0].Timestamp.Hour())
}

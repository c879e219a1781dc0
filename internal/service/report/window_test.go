package report

import (
	"testing"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayWindow_Baseline(t *testing.T) {
	start, end := dayWindow(date(2024, time.January, 15), nil)

	assert.Equal(t, time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 16, 2, 59, 59, 999*int(time.Millisecond), time.UTC), end)
}

func TestDayWindow_NonCrossingShiftUsesBaseline(t *testing.T) {
	rule := &shift.ShiftRule{StartTime: "08:00", EndTime: "17:00"}

	start, end := dayWindow(date(2024, time.January, 15), rule)

	assert.Equal(t, time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 16, 2, 59, 59, 999*int(time.Millisecond), time.UTC), end)
}

func TestDayWindow_CrossingShiftWidensAroundShiftBounds(t *testing.T) {
	rule := &shift.ShiftRule{StartTime: "22:00", EndTime: "06:00"}

	start, end := dayWindow(date(2024, time.January, 15), rule)

	// 22:00 - 4h on the date, 06:00 + 4h on the next day.
	assert.Equal(t, time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 16, 10, 0, 0, 0, time.UTC), end)
}

func TestDayWindow_MalformedRuleFallsBackToBaseline(t *testing.T) {
	rule := &shift.ShiftRule{StartTime: "8:00", EndTime: "17:00"}

	start, _ := dayWindow(date(2024, time.January, 15), rule)

	assert.Equal(t, time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC), start)
}

func TestExpectedShiftMinutes(t *testing.T) {
	cases := []struct {
		name  string
		rule  shift.ShiftRule
		want  int
		isErr bool
	}{
		{
			name: "regular nine to five",
			rule: shift.ShiftRule{StartTime: "08:00", EndTime: "17:00", BreakDurationMinutes: 60},
			want: 480,
		},
		{
			name: "midnight crossing night shift",
			rule: shift.ShiftRule{StartTime: "22:00", EndTime: "06:00", BreakDurationMinutes: 30},
			want: 450,
		},
		{
			name: "no break",
			rule: shift.ShiftRule{StartTime: "09:00", EndTime: "13:00"},
			want: 240,
		},
		{
			name: "break exceeds span propagates negative",
			rule: shift.ShiftRule{StartTime: "09:00", EndTime: "09:30", BreakDurationMinutes: 60},
			want: -30,
		},
		{
			name:  "malformed start time",
			rule:  shift.ShiftRule{StartTime: "9am", EndTime: "17:00"},
			isErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := expectedShiftMinutes(c.rule)
			if c.isErr {
				require.ErrorIs(t, err, shift.ErrMalformedShiftRule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

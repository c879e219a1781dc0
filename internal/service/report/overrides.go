package report

import (
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/holiday"
	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
)

// holidayCalendar indexes holidays by calendar date for O(1) per-day lookup.
// The repository already scopes the rows to the company or global.
type holidayCalendar map[string]struct{}

func buildHolidayCalendar(holidays []holiday.Holiday) holidayCalendar {
	calendar := make(holidayCalendar, len(holidays))
	for _, h := range holidays {
		calendar[h.Date.Format(dateLayout)] = struct{}{}
	}
	return calendar
}

func (c holidayCalendar) contains(date time.Time) bool {
	_, ok := c[date.Format(dateLayout)]
	return ok
}

// applyOverrides checks whether a holiday or an approved justification
// zeroes the expected minutes for date. The holiday check runs first: when
// both apply on the same date the day is flagged as a holiday and the
// justification metadata is not attached.
func applyOverrides(date time.Time, calendar holidayCalendar, justifications []justification.Justification) (overridden bool, isHoliday bool, match *justification.Justification) {
	if calendar.contains(date) {
		return true, true, nil
	}
	for i := range justifications {
		if justifications[i].Status != justification.StatusApproved {
			continue
		}
		if justifications[i].Covers(date) {
			return true, false, &justifications[i]
		}
	}
	return false, false, nil
}

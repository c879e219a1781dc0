package report

import (
	"fmt"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
)

const dateLayout = "2006-01-02"

const (
	// baselineStartHour aligns the virtual day to the business-day boundary
	// instead of naive midnight, so late-night activity is not split across
	// two calendar dates. Downstream payroll figures depend on this exact
	// offset; do not derive it from a timezone database.
	baselineStartHour = 3
	// crossingPadding widens the window of a midnight-crossing shift to
	// tolerate early clock-ins and late clock-outs. It is intentionally not
	// a precise shift boundary.
	crossingPadding = 4 * time.Hour

	minutesPerDay = 24 * 60
)

// dayWindow computes the instant range used to bucket events into date.
// The baseline window runs from 03:00 on the date to 02:59:59.999 the next
// day. A rule whose end time precedes its start time crosses midnight and
// gets a window padded around its actual start and end instead. A nil or
// malformed rule falls back to the baseline.
func dayWindow(date time.Time, rule *shift.ShiftRule) (start, end time.Time) {
	year, month, day := date.Date()

	if rule != nil {
		ruleStart, ruleEnd, err := rule.Bounds()
		if err == nil && ruleEnd < ruleStart {
			midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			start = midnight.Add(time.Duration(ruleStart)*time.Minute - crossingPadding)
			end = midnight.AddDate(0, 0, 1).Add(time.Duration(ruleEnd)*time.Minute + crossingPadding)
			return start, end
		}
	}

	start = time.Date(year, month, day, baselineStartHour, 0, 0, 0, time.UTC)
	end = time.Date(year, month, day+1, baselineStartHour-1, 59, 59, 999*int(time.Millisecond), time.UTC)
	return start, end
}

// expectedShiftMinutes computes the working minutes a rule expects on one of
// its work days. A crossing shift spans into the next calendar day, so its
// end bound gains a full day before the subtraction. Negative results from
// misconfigured rules (break longer than the span) propagate unclamped.
func expectedShiftMinutes(rule shift.ShiftRule) (int, error) {
	start, end, err := rule.Bounds()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", shift.ErrMalformedShiftRule, err)
	}
	if end < start {
		return end + minutesPerDay - start - rule.BreakDurationMinutes, nil
	}
	return end - start - rule.BreakDurationMinutes, nil
}

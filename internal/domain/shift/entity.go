package shift

import (
	"time"

	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

// ShiftRule is a named working-time template: wall-clock start/end, the
// weekdays it applies to, and a flat break deduction. It is reference data
// during report computation and is never written by the report path.
type ShiftRule struct {
	ID                   string
	CompanyID            string
	Name                 string
	StartTime            string // "HH:MM" local wall-clock
	EndTime              string // "HH:MM"; before StartTime means the shift crosses midnight
	WorkDays             []string
	BreakDurationMinutes int
	DailyHours           *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
}

// WorksOn reports whether the rule applies to the given weekday.
func (r ShiftRule) WorksOn(day time.Weekday) bool {
	return validator.IsInSlice(day.String(), r.WorkDays)
}

// Bounds returns the rule's start and end as minutes past midnight.
func (r ShiftRule) Bounds() (start, end int, err error) {
	start, err = validator.ParseClock(r.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = validator.ParseClock(r.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ShiftAssignment links an employee to a shift rule. Assignments are
// ordered; when several rules cover the same weekday the first assignment
// in Position order wins.
type ShiftAssignment struct {
	ID          string
	EmployeeID  string
	ShiftRuleID string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	Rule *ShiftRule
}

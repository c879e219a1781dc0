package report

import (
	"fmt"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/employee"
	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
)

// ShiftSource records which rule (if any) produced an employee's expected
// minutes for a date, so the resolution is traceable instead of inferred
// from which fields happen to be set.
type ShiftSource string

const (
	// ShiftFromAssignment: a weekday-matched shift assignment.
	ShiftFromAssignment ShiftSource = "assignment"
	// ShiftFromLegacyDefault: the employee's single legacy shift rule.
	ShiftFromLegacyDefault ShiftSource = "legacy_default"
	// ShiftFromPolicyFallback: the company-wide default policy.
	ShiftFromPolicyFallback ShiftSource = "policy_fallback"
	// ShiftNone: rules exist but none applies on this weekday.
	ShiftNone ShiftSource = "none"
)

// Default policy applied when an employee has neither assignments nor a
// legacy shift rule.
const (
	policyWeekdayMinutes  = 480
	policySaturdayMinutes = 240
	policySundayMinutes   = 0
)

type resolvedShift struct {
	Source          ShiftSource
	Rule            *shift.ShiftRule
	ExpectedMinutes int
}

// resolveShift determines the shift rule and expected minutes for one
// employee on one date.
//
// Assignments are consulted in assignment order and the first rule covering
// the date's weekday wins; the order is the configured order, not priority
// or name. When assignments exist but none covers the weekday the day is
// not a workday. Without assignments the legacy single rule applies (again
// gated on its work days), and with neither the default policy does.
func resolveShift(emp employee.Employee, date time.Time) (resolvedShift, error) {
	weekday := date.Weekday()

	if len(emp.Assignments) > 0 {
		for _, assignment := range emp.Assignments {
			if assignment.Rule == nil || !assignment.Rule.WorksOn(weekday) {
				continue
			}
			expected, err := expectedShiftMinutes(*assignment.Rule)
			if err != nil {
				return resolvedShift{}, fmt.Errorf("shift rule %s: %w", assignment.Rule.ID, err)
			}
			return resolvedShift{
				Source:          ShiftFromAssignment,
				Rule:            assignment.Rule,
				ExpectedMinutes: expected,
			}, nil
		}
		return resolvedShift{Source: ShiftNone}, nil
	}

	if emp.LegacyShiftRule != nil {
		if !emp.LegacyShiftRule.WorksOn(weekday) {
			return resolvedShift{Source: ShiftNone}, nil
		}
		expected, err := expectedShiftMinutes(*emp.LegacyShiftRule)
		if err != nil {
			return resolvedShift{}, fmt.Errorf("shift rule %s: %w", emp.LegacyShiftRule.ID, err)
		}
		return resolvedShift{
			Source:          ShiftFromLegacyDefault,
			Rule:            emp.LegacyShiftRule,
			ExpectedMinutes: expected,
		}, nil
	}

	expected := policyWeekdayMinutes
	switch weekday {
	case time.Saturday:
		expected = policySaturdayMinutes
	case time.Sunday:
		expected = policySundayMinutes
	}
	return resolvedShift{
		Source:          ShiftFromPolicyFallback,
		ExpectedMinutes: expected,
	}, nil
}

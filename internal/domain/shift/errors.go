package shift

import "errors"

var (
	ErrShiftRuleNotFound       = errors.New("shift rule not found")
	ErrShiftRuleNameExists     = errors.New("shift rule with this name already exists")
	ErrShiftAssignmentNotFound = errors.New("shift assignment not found")
	ErrShiftAssignmentExists   = errors.New("employee is already assigned to this shift rule")
	ErrMalformedShiftRule      = errors.New("shift rule has unparsable start or end time")
	ErrInvalidRequestData      = errors.New("invalid request data")
)

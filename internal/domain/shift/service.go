package shift

import "context"

type ShiftService interface {
	CreateShiftRule(ctx context.Context, req CreateShiftRuleRequest) (ShiftRuleResponse, error)
	ListShiftRules(ctx context.Context) ([]ShiftRuleResponse, error)
	GetShiftRule(ctx context.Context, id string) (ShiftRuleResponse, error)
	UpdateShiftRule(ctx context.Context, req UpdateShiftRuleRequest) (ShiftRuleResponse, error)
	DeleteShiftRule(ctx context.Context, id string) error
	AssignShift(ctx context.Context, req AssignShiftRequest) (ShiftAssignment, error)
	ListAssignments(ctx context.Context, employeeID string) ([]ShiftAssignment, error)
	UnassignShift(ctx context.Context, assignmentID string) error
}

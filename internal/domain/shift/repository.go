package shift

import "context"

type ShiftRuleRepository interface {
	Create(ctx context.Context, rule ShiftRule) (ShiftRule, error)
	GetByID(ctx context.Context, id string, companyID string) (ShiftRule, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]ShiftRule, error)
	Update(ctx context.Context, req UpdateShiftRuleRequest) (ShiftRule, error)
	Delete(ctx context.Context, id, companyID string) error
}

type ShiftAssignmentRepository interface {
	Create(ctx context.Context, assignment ShiftAssignment, companyID string) (ShiftAssignment, error)
	// GetByEmployeeID returns the employee's assignments in Position order,
	// each with its Rule populated.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]ShiftAssignment, error)
	Delete(ctx context.Context, id string, companyID string) error
}

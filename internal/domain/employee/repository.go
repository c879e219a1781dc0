package employee

import "context"

// RosterFilter narrows the paged roster query used by report generation.
type RosterFilter struct {
	// UserID restricts the roster to the employee with this user id.
	UserID *string
	// ShiftRuleID restricts the roster to employees assigned to this rule.
	ShiftRuleID *string
	Page        int
	Limit       int
}

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string, companyID string) (Employee, error)
	// ListRoster returns a page of employees ordered by full_name ASC, id ASC
	// (the id tie-break keeps pagination stable for duplicate names), with
	// shift assignments and the legacy shift rule populated.
	ListRoster(ctx context.Context, companyID string, filter RosterFilter) ([]Employee, int64, error)
}

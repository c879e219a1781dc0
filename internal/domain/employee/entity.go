package employee

import (
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
)

type Employee struct {
	ID        string
	UserID    string
	CompanyID string
	FullName  string
	Position  *string
	// LegacyShiftRuleID is the pre-assignment single shift reference; it is
	// only consulted when the employee has no shift assignments.
	LegacyShiftRuleID *string
	HireDate          time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time

	// Joins
	Assignments     []shift.ShiftAssignment
	LegacyShiftRule *shift.ShiftRule
}

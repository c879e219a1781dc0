package report

import (
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

// AttendanceReportRequest carries the parsed and scope-checked report query.
// StartDate and EndDate are absolute instants; a date-only end_date query
// parameter has already been widened to 23:59:59.999 by the handler.
type AttendanceReportRequest struct {
	UserID      string
	ShiftRuleID string
	StartDate   time.Time
	EndDate     time.Time
	Page        int
	Limit       int
	OnlyIssues  bool
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.StartDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	}
	if r.EndDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if len(errs) > 0 {
		return errs
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	return nil
}

// JustificationSummary is the per-day metadata attached when an approved
// justification zeroes the expected minutes.
type JustificationSummary struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// DayRecord is one reconciled calendar day for one employee. It is computed
// fresh on every request and never persisted.
type DayRecord struct {
	Date            string                `json:"date"`
	WorkedMinutes   int                   `json:"worked_minutes"`
	ExpectedMinutes int                   `json:"expected_minutes"`
	BalanceMinutes  int                   `json:"balance_minutes"`
	Events          []timeevent.TimeEvent `json:"events"`
	IsHoliday       bool                  `json:"is_holiday"`
	Justification   *JustificationSummary `json:"justification,omitempty"`
}

// EmployeeReport is one roster row of the attendance report. Error is set
// instead of aborting the page when this employee's shift data is malformed.
type EmployeeReport struct {
	EmployeeID          string      `json:"employee_id"`
	UserID              string      `json:"user_id"`
	FullName            string      `json:"full_name"`
	Position            *string     `json:"position,omitempty"`
	Report              []DayRecord `json:"report"`
	TotalBalanceMinutes int         `json:"total_balance_minutes"`
	Error               string      `json:"error,omitempty"`
}

type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type AttendanceReport struct {
	Data     []EmployeeReport `json:"data"`
	Metadata Metadata         `json:"metadata"`
}

package shift

import (
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

type CreateShiftRuleRequest struct {
	Name                 string   `json:"name"`
	StartTime            string   `json:"start_time"`
	EndTime              string   `json:"end_time"`
	WorkDays             []string `json:"work_days"`
	BreakDurationMinutes int      `json:"break_duration_minutes"`
	DailyHours           *int     `json:"daily_hours,omitempty"`
}

func (r CreateShiftRuleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if len(r.WorkDays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "work_days", Message: "at least one work day is required"})
	}
	for _, day := range r.WorkDays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "invalid weekday name: " + day})
			break
		}
	}
	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_duration_minutes", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRuleRequest struct {
	ID                   string
	CompanyID            string
	Name                 *string  `json:"name,omitempty"`
	StartTime            *string  `json:"start_time,omitempty"`
	EndTime              *string  `json:"end_time,omitempty"`
	WorkDays             []string `json:"work_days,omitempty"`
	BreakDurationMinutes *int     `json:"break_duration_minutes,omitempty"`
	DailyHours           *int     `json:"daily_hours,omitempty"`
}

func (r UpdateShiftRuleRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	for _, day := range r.WorkDays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "invalid weekday name: " + day})
			break
		}
	}
	if r.BreakDurationMinutes != nil && *r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_duration_minutes", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID  string `json:"employee_id"`
	ShiftRuleID string `json:"shift_rule_id"`
}

func (r AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.ShiftRuleID) {
		errs = append(errs, validator.ValidationError{Field: "shift_rule_id", Message: "must be a valid UUID"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftRuleResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	StartTime            string   `json:"start_time"`
	EndTime              string   `json:"end_time"`
	WorkDays             []string `json:"work_days"`
	BreakDurationMinutes int      `json:"break_duration_minutes"`
	DailyHours           *int     `json:"daily_hours,omitempty"`
}

func ToShiftRuleResponse(rule ShiftRule) ShiftRuleResponse {
	return ShiftRuleResponse{
		ID:                   rule.ID,
		Name:                 rule.Name,
		StartTime:            rule.StartTime,
		EndTime:              rule.EndTime,
		WorkDays:             rule.WorkDays,
		BreakDurationMinutes: rule.BreakDurationMinutes,
		DailyHours:           rule.DailyHours,
	}
}

package response

import (
	"errors"
	"net/http"

	"github.com/chronoline/attendance-backend-go/internal/domain/auth"
	"github.com/chronoline/attendance-backend-go/internal/domain/employee"
	"github.com/chronoline/attendance-backend-go/internal/domain/holiday"
	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
	"github.com/chronoline/attendance-backend-go/internal/domain/report"
	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/domain/user"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, "No account registered for this email")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)

	// User domain errors
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftRuleNotFound):
		NotFound(w, "Shift rule not found")
	case errors.Is(err, shift.ErrShiftRuleNameExists):
		Conflict(w, "Shift rule with this name already exists")
	case errors.Is(err, shift.ErrShiftAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrShiftAssignmentExists):
		Conflict(w, "Employee is already assigned to this shift rule")
	case errors.Is(err, shift.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Time event domain errors
	case errors.Is(err, timeevent.ErrTimeEventNotFound):
		NotFound(w, "Time event not found")
	case errors.Is(err, timeevent.ErrInvalidEventType):
		BadRequest(w, "Invalid event type", nil)
	case errors.Is(err, timeevent.ErrTimestampInFuture):
		BadRequest(w, "Event timestamp is in the future", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")
	case errors.Is(err, holiday.ErrGlobalHolidayForbidden):
		Forbidden(w, "Only owners may manage global holidays")

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyProcessed):
		Conflict(w, "Justification already processed")
	case errors.Is(err, justification.ErrInvalidDateRange):
		BadRequest(w, "end_date must not be before start_date", nil)
	case errors.Is(err, justification.ErrInvalidStatus):
		BadRequest(w, "Unknown justification status", nil)

	// Report domain errors
	case errors.Is(err, report.ErrCompanyScopeMissing):
		Forbidden(w, "No company scope on this account")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

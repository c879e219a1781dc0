package justification

import (
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

type CreateJustificationRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	// EndDate defaults to StartDate when omitted.
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
}

func (r CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != "" {
		end, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewJustificationRequest struct {
	ID     string
	Status Status `json:"status"`
}

func (r ReviewJustificationRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be approved or rejected"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustificationFilter struct {
	UserID *string
	Status *Status
	Page   int
	Limit  int
}

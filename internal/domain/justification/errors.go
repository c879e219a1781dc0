package justification

import "errors"

var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrAlreadyProcessed      = errors.New("justification already processed")
	ErrInvalidStatus         = errors.New("invalid justification status")
	ErrInvalidDateRange      = errors.New("end_date must not be before start_date")
)

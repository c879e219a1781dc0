package report

import "errors"

var (
	ErrCompanyScopeMissing = errors.New("company scope missing from request context")
)

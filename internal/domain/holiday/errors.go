package holiday

import "errors"

var (
	ErrHolidayNotFound        = errors.New("holiday not found")
	ErrHolidayExists          = errors.New("holiday already exists for this date")
	ErrGlobalHolidayForbidden = errors.New("only owners may manage global holidays")
)

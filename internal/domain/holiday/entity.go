package holiday

import "time"

// Holiday marks a date as non-working. A nil CompanyID means the holiday is
// global and applies to every company.
type Holiday struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	CompanyID *string   `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"-"`
}

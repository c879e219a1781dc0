package justification

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// Justification is an absence record covering an inclusive date range.
// Only approved justifications excuse expected work time.
type Justification struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CompanyID   string     `json:"company_id"`
	Type        string     `json:"type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      Status     `json:"status"`
	Description string     `json:"description"`
	ReviewedBy  *string    `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Covers reports whether date falls inside the justification's inclusive
// range, compared as calendar dates.
func (j Justification) Covers(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	start := j.StartDate.Truncate(24 * time.Hour)
	end := j.EndDate.Truncate(24 * time.Hour)
	return !day.Before(start) && !day.After(end)
}

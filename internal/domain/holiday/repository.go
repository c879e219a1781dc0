package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	// ListBetween returns holidays with from <= date <= to that are either
	// global or scoped to the given company.
	ListBetween(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
}

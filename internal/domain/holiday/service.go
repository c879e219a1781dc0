package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
	// List returns holidays visible to the caller's company, global ones
	// included, between two YYYY-MM-DD dates inclusive.
	List(ctx context.Context, from, to string) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}

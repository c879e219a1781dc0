package justification

import (
	"context"
	"time"
)

type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)
	GetByID(ctx context.Context, id string, companyID string) (Justification, error)
	List(ctx context.Context, companyID string, filter JustificationFilter) ([]Justification, int64, error)
	UpdateStatus(ctx context.Context, id, companyID string, status Status, reviewedBy string, reviewedAt time.Time) error
	// ListApprovedOverlapping returns approved justifications for a user whose
	// inclusive [start_date, end_date] range overlaps [from, to].
	ListApprovedOverlapping(ctx context.Context, userID, companyID string, from, to time.Time) ([]Justification, error)
}

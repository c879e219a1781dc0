package justification

import "context"

type JustificationService interface {
	Create(ctx context.Context, req CreateJustificationRequest) (Justification, error)
	Review(ctx context.Context, req ReviewJustificationRequest) (Justification, error)
	List(ctx context.Context, filter JustificationFilter) ([]Justification, int64, error)
}

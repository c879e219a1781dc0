package justification

import (
	"context"
	"fmt"

	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
	"github.com/chronoline/attendance-backend-go/internal/domain/user"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type JustificationServiceImpl struct {
	justification.JustificationRepository
	clock clock.Clock
}

func NewJustificationService(repository justification.JustificationRepository, clk clock.Clock) justification.JustificationService {
	return &JustificationServiceImpl{
		JustificationRepository: repository,
		clock:                   clk,
	}
}

type caller struct {
	UserID    string
	CompanyID string
	Role      user.Role
}

func (s *JustificationServiceImpl) callerFromContext(ctx context.Context) (caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return caller{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	companyID, _ := claims["company_id"].(string)
	role, _ := claims["role"].(string)
	return caller{UserID: userID, CompanyID: companyID, Role: user.Role(role)}, nil
}

// Create implements justification.JustificationService. New justifications
// always start pending and never affect reports until approved.
func (s *JustificationServiceImpl) Create(ctx context.Context, req justification.CreateJustificationRequest) (justification.Justification, error) {
	if err := req.Validate(); err != nil {
		return justification.Justification{}, err
	}

	c, err := s.callerFromContext(ctx)
	if err != nil {
		return justification.Justification{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate := startDate
	if req.EndDate != "" {
		endDate, _ = validator.IsValidDate(req.EndDate)
	}

	j := justification.Justification{
		ID:          uuid.NewString(),
		UserID:      c.UserID,
		CompanyID:   c.CompanyID,
		Type:        req.Type,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      justification.StatusPending,
		Description: req.Description,
	}

	created, err := s.JustificationRepository.Create(ctx, j)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return created, nil
}

// Review implements justification.JustificationService. Only pending
// justifications can be reviewed; a second review fails instead of silently
// flipping the outcome.
func (s *JustificationServiceImpl) Review(ctx context.Context, req justification.ReviewJustificationRequest) (justification.Justification, error) {
	if err := req.Validate(); err != nil {
		return justification.Justification{}, err
	}

	c, err := s.callerFromContext(ctx)
	if err != nil {
		return justification.Justification{}, err
	}

	if err := s.JustificationRepository.UpdateStatus(ctx, req.ID, c.CompanyID, req.Status, c.UserID, s.clock.Now()); err != nil {
		return justification.Justification{}, err
	}

	reviewed, err := s.JustificationRepository.GetByID(ctx, req.ID, c.CompanyID)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to get justification after review: %w", err)
	}
	return reviewed, nil
}

// List implements justification.JustificationService. Employees only ever
// see their own submissions; reviewers see the whole company.
func (s *JustificationServiceImpl) List(ctx context.Context, filter justification.JustificationFilter) ([]justification.Justification, int64, error) {
	c, err := s.callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Status != nil && !validator.IsInSlice(string(*filter.Status), justification.StatusValues) {
		return nil, 0, justification.ErrInvalidStatus
	}
	if c.Role == user.RoleEmployee {
		filter.UserID = &c.UserID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	justifications, total, err := s.JustificationRepository.List(ctx, c.CompanyID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list justifications: %w", err)
	}
	return justifications, total, nil
}

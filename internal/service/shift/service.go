package shift

import (
	"context"
	"fmt"

	"github.com/chronoline/attendance-backend-go/internal/domain/employee"
	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
	"github.com/chronoline/attendance-backend-go/internal/pkg/database"
	"github.com/chronoline/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRuleRepository
	shift.ShiftAssignmentRepository
	employee.EmployeeRepository
}

func NewShiftService(
	db *database.DB,
	ruleRepository shift.ShiftRuleRepository,
	assignmentRepository shift.ShiftAssignmentRepository,
	employeeRepository employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:                        db,
		ShiftRuleRepository:       ruleRepository,
		ShiftAssignmentRepository: assignmentRepository,
		EmployeeRepository:        employeeRepository,
	}
}

func (s *ShiftServiceImpl) companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", shift.ErrInvalidRequestData
	}
	return companyID, nil
}

// CreateShiftRule implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShiftRule(ctx context.Context, req shift.CreateShiftRuleRequest) (shift.ShiftRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftRuleResponse{}, err
	}

	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return shift.ShiftRuleResponse{}, err
	}

	rule := shift.ShiftRule{
		ID:                   uuid.NewString(),
		CompanyID:            companyID,
		Name:                 req.Name,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		WorkDays:             req.WorkDays,
		BreakDurationMinutes: req.BreakDurationMinutes,
		DailyHours:           req.DailyHours,
	}

	created, err := s.ShiftRuleRepository.Create(ctx, rule)
	if err != nil {
		return shift.ShiftRuleResponse{}, fmt.Errorf("failed to create shift rule: %w", err)
	}

	return shift.ToShiftRuleResponse(created), nil
}

// ListShiftRules implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShiftRules(ctx context.Context) ([]shift.ShiftRuleResponse, error) {
	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := s.ShiftRuleRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift rules: %w", err)
	}

	responses := make([]shift.ShiftRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, shift.ToShiftRuleResponse(rule))
	}
	return responses, nil
}

// GetShiftRule implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShiftRule(ctx context.Context, id string) (shift.ShiftRuleResponse, error) {
	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return shift.ShiftRuleResponse{}, err
	}

	rule, err := s.ShiftRuleRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.ShiftRuleResponse{}, err
	}

	return shift.ToShiftRuleResponse(rule), nil
}

// UpdateShiftRule implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShiftRule(ctx context.Context, req shift.UpdateShiftRuleRequest) (shift.ShiftRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftRuleResponse{}, err
	}

	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return shift.ShiftRuleResponse{}, err
	}
	req.CompanyID = companyID

	updated, err := s.ShiftRuleRepository.Update(ctx, req)
	if err != nil {
		return shift.ShiftRuleResponse{}, err
	}

	return shift.ToShiftRuleResponse(updated), nil
}

// DeleteShiftRule implements shift.ShiftService. The delete is soft; reports
// over past ranges keep resolving the rule through existing assignments.
func (s *ShiftServiceImpl) DeleteShiftRule(ctx context.Context, id string) error {
	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.ShiftRuleRepository.Delete(ctx, id, companyID)
}

// AssignShift implements shift.ShiftService. The new assignment is appended
// at the end of the employee's priority order.
func (s *ShiftServiceImpl) AssignShift(ctx context.Context, req shift.AssignShiftRequest) (shift.ShiftAssignment, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftAssignment{}, err
	}

	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return shift.ShiftAssignment{}, err
	}

	// Both sides must belong to the caller's company.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return shift.ShiftAssignment{}, err
	}
	rule, err := s.ShiftRuleRepository.GetByID(ctx, req.ShiftRuleID, companyID)
	if err != nil {
		return shift.ShiftAssignment{}, err
	}

	var created shift.ShiftAssignment
	// Duplicate check and position append must see the same assignment set.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.ShiftAssignmentRepository.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to list shift assignments: %w", err)
		}
		for _, assignment := range existing {
			if assignment.ShiftRuleID == req.ShiftRuleID {
				return shift.ErrShiftAssignmentExists
			}
		}

		assignment := shift.ShiftAssignment{
			ID:          uuid.NewString(),
			EmployeeID:  req.EmployeeID,
			ShiftRuleID: req.ShiftRuleID,
		}
		created, err = s.ShiftAssignmentRepository.Create(txCtx, assignment, companyID)
		if err != nil {
			return fmt.Errorf("failed to create shift assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftAssignment{}, err
	}
	created.Rule = &rule

	return created, nil
}

// ListAssignments implements shift.ShiftService.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]shift.ShiftAssignment, error) {
	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	assignments, err := s.ShiftAssignmentRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return assignments, nil
}

// UnassignShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UnassignShift(ctx context.Context, assignmentID string) error {
	companyID, err := s.companyFromContext(ctx)
	if err != nil {
		return err
	}
	return s.ShiftAssignmentRepository.Delete(ctx, assignmentID, companyID)
}

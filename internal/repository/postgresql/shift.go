package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
	"github.com/chronoline/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRuleRepository struct {
	db *database.DB
}

func NewShiftRuleRepository(db *database.DB) shift.ShiftRuleRepository {
	return &shiftRuleRepository{db: db}
}

// Create implements shift.ShiftRuleRepository.
func (r *shiftRuleRepository) Create(ctx context.Context, rule shift.ShiftRule) (shift.ShiftRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_rules (
			id, company_id, name, start_time, end_time, work_days,
			break_duration_minutes, daily_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.ID,
		rule.CompanyID,
		rule.Name,
		rule.StartTime,
		rule.EndTime,
		rule.WorkDays,
		rule.BreakDurationMinutes,
		rule.DailyHours,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return shift.ShiftRule{}, fmt.Errorf("failed to create shift rule: %w", err)
	}

	return rule, nil
}

// GetByID implements shift.ShiftRuleRepository.
func (r *shiftRuleRepository) GetByID(ctx context.Context, id string, companyID string) (shift.ShiftRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_time, end_time, work_days,
		       break_duration_minutes, daily_hours, created_at, updated_at
		FROM shift_rules
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var rule shift.ShiftRule
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&rule.ID, &rule.CompanyID, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.WorkDays,
		&rule.BreakDurationMinutes, &rule.DailyHours, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftRule{}, shift.ErrShiftRuleNotFound
		}
		return shift.ShiftRule{}, fmt.Errorf("failed to get shift rule by id: %w", err)
	}

	return rule, nil
}

// GetByCompanyID implements shift.ShiftRuleRepository.
func (r *shiftRuleRepository) GetByCompanyID(ctx context.Context, companyID string) ([]shift.ShiftRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_time, end_time, work_days,
		       break_duration_minutes, daily_hours, created_at, updated_at
		FROM shift_rules
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift rules: %w", err)
	}
	defer rows.Close()

	var rules []shift.ShiftRule
	for rows.Next() {
		var rule shift.ShiftRule
		err := rows.Scan(
			&rule.ID, &rule.CompanyID, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.WorkDays,
			&rule.BreakDurationMinutes, &rule.DailyHours, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// Update implements shift.ShiftRuleRepository.
func (r *shiftRuleRepository) Update(ctx context.Context, req shift.UpdateShiftRuleRequest) (shift.ShiftRule, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.StartTime != nil {
		updates = append(updates, fmt.Sprintf("start_time = $%d", argIdx))
		args = append(args, *req.StartTime)
		argIdx++
	}
	if req.EndTime != nil {
		updates = append(updates, fmt.Sprintf("end_time = $%d", argIdx))
		args = append(args, *req.EndTime)
		argIdx++
	}
	if len(req.WorkDays) > 0 {
		updates = append(updates, fmt.Sprintf("work_days = $%d", argIdx))
		args = append(args, req.WorkDays)
		argIdx++
	}
	if req.BreakDurationMinutes != nil {
		updates = append(updates, fmt.Sprintf("break_duration_minutes = $%d", argIdx))
		args = append(args, *req.BreakDurationMinutes)
		argIdx++
	}
	if req.DailyHours != nil {
		updates = append(updates, fmt.Sprintf("daily_hours = $%d", argIdx))
		args = append(args, *req.DailyHours)
		argIdx++
	}

	if len(updates) == 0 {
		return shift.ShiftRule{}, shift.ErrInvalidRequestData
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID, req.CompanyID)

	query := "UPDATE shift_rules SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(` WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL
		RETURNING id, company_id, name, start_time, end_time, work_days,
		          break_duration_minutes, daily_hours, created_at, updated_at`,
			argIdx, argIdx+1)

	var rule shift.ShiftRule
	err := q.QueryRow(ctx, query, args...).Scan(
		&rule.ID, &rule.CompanyID, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.WorkDays,
		&rule.BreakDurationMinutes, &rule.DailyHours, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftRule{}, shift.ErrShiftRuleNotFound
		}
		return shift.ShiftRule{}, fmt.Errorf("failed to update shift rule: %w", err)
	}

	return rule, nil
}

// Delete implements shift.ShiftRuleRepository.
func (r *shiftRuleRepository) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_rules SET deleted_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete shift rule: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftRuleNotFound
	}

	return nil
}

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

// Create implements shift.ShiftAssignmentRepository. New assignments are
// appended at the end of the employee's assignment order.
func (r *shiftAssignmentRepository) Create(ctx context.Context, assignment shift.ShiftAssignment, companyID string) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, employee_id, shift_rule_id, position)
		SELECT $1, $2, $3, COALESCE(MAX(position), 0) + 1
		FROM shift_assignments
		WHERE employee_id = $2
		RETURNING position, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.ID,
		assignment.EmployeeID,
		assignment.ShiftRuleID,
	).Scan(&assignment.Position, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return assignment, nil
}

// GetByEmployeeID implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_rule_id, sa.position,
		       sa.created_at, sa.updated_at,
		       r.id, r.company_id, r.name, r.start_time, r.end_time, r.work_days,
		       r.break_duration_minutes, r.daily_hours, r.created_at, r.updated_at
		FROM shift_assignments sa
		JOIN shift_rules r ON r.id = sa.shift_rule_id
		WHERE sa.employee_id = $1
		ORDER BY sa.position ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		var sa shift.ShiftAssignment
		var rule shift.ShiftRule
		err := rows.Scan(
			&sa.ID, &sa.EmployeeID, &sa.ShiftRuleID, &sa.Position,
			&sa.CreatedAt, &sa.UpdatedAt,
			&rule.ID, &rule.CompanyID, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.WorkDays,
			&rule.BreakDurationMinutes, &rule.DailyHours, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		sa.Rule = &rule
		assignments = append(assignments, sa)
	}

	return assignments, rows.Err()
}

// Delete implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_assignments sa
		USING employees e
		WHERE sa.id = $1 AND e.id = sa.employee_id AND e.company_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftAssignmentNotFound
	}

	return nil
}

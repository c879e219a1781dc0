package postgresql

import (
	"context"
	"fmt"

	"github.com/chronoline/attendance-backend-go/internal/domain/employee"
	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
	"github.com/chronoline/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.company_id, e.full_name, e.position,
	e.legacy_shift_rule_id, e.hire_date, e.created_at, e.updated_at, e.deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.CompanyID, &emp.FullName, &emp.Position,
		&emp.LegacyShiftRuleID, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.user_id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	return emp, nil
}

// ListRoster implements employee.EmployeeRepository.
//
// ORDER BY full_name, id: full_name alone is not unique, the id tie-break
// keeps page boundaries deterministic.
func (r *employeeRepository) ListRoster(ctx context.Context, companyID string, filter employee.RosterFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "e.company_id = $1 AND e.deleted_at IS NULL"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND e.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.ShiftRuleID != nil && *filter.ShiftRuleID != "" {
		baseWhere += fmt.Sprintf(` AND (
			e.legacy_shift_rule_id = $%d OR EXISTS (
				SELECT 1 FROM shift_assignments sa
				WHERE sa.employee_id = e.id AND sa.shift_rule_id = $%d
			))`, argIdx, argIdx)
		args = append(args, *filter.ShiftRuleID)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 10
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees e
		WHERE %s
		ORDER BY e.full_name ASC, e.id ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read employees: %w", err)
	}

	if err := r.attachShiftData(ctx, q, employees); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// attachShiftData populates Assignments (in position order, with rules) and
// the legacy shift rule for a page of employees in two batched queries.
func (r *employeeRepository) attachShiftData(ctx context.Context, q database.Querier, employees []employee.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	byID := make(map[string]*employee.Employee, len(employees))
	employeeIDs := make([]string, 0, len(employees))
	legacyRuleIDs := make([]string, 0)
	for i := range employees {
		byID[employees[i].ID] = &employees[i]
		employeeIDs = append(employeeIDs, employees[i].ID)
		if employees[i].LegacyShiftRuleID != nil {
			legacyRuleIDs = append(legacyRuleIDs, *employees[i].LegacyShiftRuleID)
		}
	}

	assignmentQuery := `
		SELECT sa.id, sa.employee_id, sa.shift_rule_id, sa.position,
		       sa.created_at, sa.updated_at,
		       r.id, r.company_id, r.name, r.start_time, r.end_time, r.work_days,
		       r.break_duration_minutes, r.daily_hours, r.created_at, r.updated_at
		FROM shift_assignments sa
		JOIN shift_rules r ON r.id = sa.shift_rule_id
		WHERE sa.employee_id = ANY($1)
		ORDER BY sa.employee_id, sa.position ASC
	`

	rows, err := q.Query(ctx, assignmentQuery, employeeIDs)
	if err != nil {
		return fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

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
			return fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		sa.Rule = &rule
		if emp, ok := byID[sa.EmployeeID]; ok {
			emp.Assignments = append(emp.Assignments, sa)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read shift assignments: %w", err)
	}

	if len(legacyRuleIDs) == 0 {
		return nil
	}

	legacyQuery := `
		SELECT id, company_id, name, start_time, end_time, work_days,
		       break_duration_minutes, daily_hours, created_at, updated_at
		FROM shift_rules
		WHERE id = ANY($1)
	`

	legacyRows, err := q.Query(ctx, legacyQuery, legacyRuleIDs)
	if err != nil {
		return fmt.Errorf("failed to query legacy shift rules: %w", err)
	}
	defer legacyRows.Close()

	legacyByID := make(map[string]shift.ShiftRule)
	for legacyRows.Next() {
		var rule shift.ShiftRule
		err := legacyRows.Scan(
			&rule.ID, &rule.CompanyID, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.WorkDays,
			&rule.BreakDurationMinutes, &rule.DailyHours, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan legacy shift rule: %w", err)
		}
		legacyByID[rule.ID] = rule
	}
	if err := legacyRows.Err(); err != nil {
		return fmt.Errorf("failed to read legacy shift rules: %w", err)
	}

	for i := range employees {
		if employees[i].LegacyShiftRuleID == nil {
			continue
		}
		if rule, ok := legacyByID[*employees[i].LegacyShiftRuleID]; ok {
			ruleCopy := rule
			employees[i].LegacyShiftRule = &ruleCopy
		}
	}

	return nil
}

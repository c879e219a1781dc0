package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
	"github.com/chronoline/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}

const justificationColumns = `
	id, user_id, company_id, type, start_date, end_date, status,
	description, reviewed_by, reviewed_at, created_at, updated_at
`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var j justification.Justification
	err := row.Scan(
		&j.ID, &j.UserID, &j.CompanyID, &j.Type, &j.StartDate, &j.EndDate, &j.Status,
		&j.Description, &j.ReviewedBy, &j.ReviewedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (
			id, user_id, company_id, type, start_date, end_date, status, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		j.ID, j.UserID, j.CompanyID, j.Type, j.StartDate, j.EndDate, j.Status, j.Description,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}

	return j, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string, companyID string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justifications
		WHERE id = $1 AND company_id = $2
	`

	j, err := scanJustification(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to get justification by id: %w", err)
	}

	return j, nil
}

// List implements justification.JustificationRepository.
func (r *justificationRepository) List(ctx context.Context, companyID string, filter justification.JustificationFilter) ([]justification.Justification, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM justifications WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count justifications: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT `+justificationColumns+`
		FROM justifications
		WHERE %s
		ORDER BY start_date DESC, id ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query justifications: %w", err)
	}
	defer rows.Close()

	var justifications []justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan justification: %w", err)
		}
		justifications = append(justifications, j)
	}

	return justifications, total, rows.Err()
}

// UpdateStatus implements justification.JustificationRepository. The status
// transition is guarded in SQL so a concurrently processed record is not
// overwritten.
func (r *justificationRepository) UpdateStatus(ctx context.Context, id, companyID string, status justification.Status, reviewedBy string, reviewedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = $3
		WHERE id = $4 AND company_id = $5 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, status, reviewedBy, reviewedAt, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update justification status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		// Either missing or already processed; disambiguate for the caller.
		if _, err := r.GetByID(ctx, id, companyID); err != nil {
			return err
		}
		return justification.ErrAlreadyProcessed
	}

	return nil
}

// ListApprovedOverlapping implements justification.JustificationRepository.
func (r *justificationRepository) ListApprovedOverlapping(ctx context.Context, userID, companyID string, from, to time.Time) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justifications
		WHERE user_id = $1 AND company_id = $2 AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $4
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, userID, companyID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved justifications: %w", err)
	}
	defer rows.Close()

	var justifications []justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		justifications = append(justifications, j)
	}

	return justifications, rows.Err()
}

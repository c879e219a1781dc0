package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/pkg/database"
)

type timeEventRepository struct {
	db *database.DB
}

func NewTimeEventRepository(db *database.DB) timeevent.TimeEventRepository {
	return &timeEventRepository{db: db}
}

// Create implements timeevent.TimeEventRepository.
func (r *timeEventRepository) Create(ctx context.Context, event timeevent.TimeEvent) (timeevent.TimeEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_events (
			id, user_id, company_id, event_type, timestamp,
			latitude, longitude, approval_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		event.CompanyID,
		event.Type,
		event.Timestamp,
		event.Latitude,
		event.Longitude,
		event.ApprovalStatus,
	).Scan(&event.CreatedAt)
	if err != nil {
		return timeevent.TimeEvent{}, fmt.Errorf("failed to create time event: %w", err)
	}

	return event, nil
}

// ListByUserBetween implements timeevent.TimeEventRepository. The report
// path calls this once per employee for the whole padded range and slices
// per day window in memory.
func (r *timeEventRepository) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]timeevent.TimeEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, company_id, event_type, timestamp,
		       latitude, longitude, approval_status, created_at
		FROM time_events
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp <= $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query time events: %w", err)
	}
	defer rows.Close()

	var events []timeevent.TimeEvent
	for rows.Next() {
		var ev timeevent.TimeEvent
		err := rows.Scan(
			&ev.ID, &ev.UserID, &ev.CompanyID, &ev.Type, &ev.Timestamp,
			&ev.Latitude, &ev.Longitude, &ev.ApprovalStatus, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListMy implements timeevent.TimeEventRepository.
func (r *timeEventRepository) ListMy(ctx context.Context, userID string, filter timeevent.MyTimeEventsFilter) ([]timeevent.TimeEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND timestamp >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND timestamp < ($%d::date + INTERVAL '1 day')", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM time_events WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time events: %w", err)
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
		SELECT id, user_id, company_id, event_type, timestamp,
		       latitude, longitude, approval_status, created_at
		FROM time_events
		WHERE %s
		ORDER BY timestamp DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query time events: %w", err)
	}
	defer rows.Close()

	var events []timeevent.TimeEvent
	for rows.Next() {
		var ev timeevent.TimeEvent
		err := rows.Scan(
			&ev.ID, &ev.UserID, &ev.CompanyID, &ev.Type, &ev.Timestamp,
			&ev.Latitude, &ev.Longitude, &ev.ApprovalStatus, &ev.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time event: %w", err)
		}
		events = append(events, ev)
	}

	return events, total, rows.Err()
}

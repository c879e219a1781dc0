package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/employee"
	"github.com/chronoline/attendance-backend-go/internal/domain/holiday"
	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
	"github.com/chronoline/attendance-backend-go/internal/domain/report"
	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/domain/user"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
)

type ReportServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	eventRepo         timeevent.TimeEventRepository
	holidayRepo       holiday.HolidayRepository
	justificationRepo justification.JustificationRepository
	clock             clock.Clock
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	eventRepo timeevent.TimeEventRepository,
	holidayRepo holiday.HolidayRepository,
	justificationRepo justification.JustificationRepository,
	clk clock.Clock,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:      employeeRepo,
		eventRepo:         eventRepo,
		holidayRepo:       holidayRepo,
		justificationRepo: justificationRepo,
		clock:             clk,
	}
}

type requestScope struct {
	CompanyID string
	UserID    string
	Role      user.Role
}

// scopeFromContext extracts the pre-validated tenant scope from JWT claims.
// The service never broadens a query beyond this scope.
func (s *ReportServiceImpl) scopeFromContext(ctx context.Context) (requestScope, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return requestScope{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return requestScope{}, report.ErrCompanyScopeMissing
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)

	return requestScope{
		CompanyID: companyID,
		UserID:    userID,
		Role:      user.Role(role),
	}, nil
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	scope, err := s.scopeFromContext(ctx)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	// Employees may only ever see their own report, whatever the filter says.
	if scope.Role == user.RoleEmployee {
		req.UserID = scope.UserID
	}

	filter := employee.RosterFilter{Page: req.Page, Limit: req.Limit}
	if req.UserID != "" {
		filter.UserID = &req.UserID
	}
	if req.ShiftRuleID != "" {
		filter.ShiftRuleID = &req.ShiftRuleID
	}

	employees, total, err := s.employeeRepo.ListRoster(ctx, scope.CompanyID, filter)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	startDay := dayOf(req.StartDate)
	endDay := dayOf(req.EndDate)

	holidays, err := s.holidayRepo.ListBetween(ctx, scope.CompanyID, startDay, endDay)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	calendar := buildHolidayCalendar(holidays)

	now := s.clock.Now()
	rows := make([]report.EmployeeReport, 0, len(employees))
	for _, emp := range employees {
		// Abandon at the loop boundary if the caller went away; no partial
		// employee record is emitted.
		if err := ctx.Err(); err != nil {
			return report.AttendanceReport{}, err
		}

		row, err := s.buildEmployeeReport(ctx, scope.CompanyID, emp, startDay, endDay, calendar, now)
		if err != nil {
			return report.AttendanceReport{}, err
		}

		if req.OnlyIssues {
			row.Report = negativeDays(row.Report)
			if len(row.Report) == 0 && row.Error == "" {
				continue
			}
		}
		rows = append(rows, row)
	}

	totalPages := int(math.Ceil(float64(total) / float64(req.Limit)))

	return report.AttendanceReport{
		Data: rows,
		Metadata: report.Metadata{
			Total:      total,
			Page:       req.Page,
			Limit:      req.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// buildEmployeeReport reconciles one employee over the full date range.
// Data-store read failures abort the whole request; a malformed shift rule
// only poisons this row, which is returned with its Error marker set.
func (s *ReportServiceImpl) buildEmployeeReport(
	ctx context.Context,
	companyID string,
	emp employee.Employee,
	startDay, endDay time.Time,
	calendar holidayCalendar,
	now time.Time,
) (report.EmployeeReport, error) {
	// One batched read per employee: the padding covers the widest possible
	// day window on both sides of the range.
	events, err := s.eventRepo.ListByUserBetween(ctx, emp.UserID, startDay.Add(-24*time.Hour), endDay.Add(72*time.Hour))
	if err != nil {
		return report.EmployeeReport{}, fmt.Errorf("failed to list time events: %w", err)
	}

	justifications, err := s.justificationRepo.ListApprovedOverlapping(ctx, emp.UserID, companyID, startDay, endDay)
	if err != nil {
		return report.EmployeeReport{}, fmt.Errorf("failed to list justifications: %w", err)
	}

	row := report.EmployeeReport{
		EmployeeID: emp.ID,
		UserID:     emp.UserID,
		FullName:   emp.FullName,
		Position:   emp.Position,
		Report:     []report.DayRecord{},
	}

	today := dayOf(now)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		resolved, resolveErr := resolveShift(emp, day)
		if resolveErr != nil {
			// Malformed shift data: keep the row, zero the expectation, and
			// surface the reason instead of failing the page.
			if row.Error == "" {
				row.Error = resolveErr.Error()
			}
			resolved = resolvedShift{Source: ShiftNone}
		}

		windowStart, windowEnd := dayWindow(day, resolved.Rule)
		dayEvents := eventsWithin(events, windowStart, windowEnd)
		worked := accumulateWorked(dayEvents, windowEnd, now)

		expected := resolved.ExpectedMinutes
		overridden, isHoliday, match := applyOverrides(day, calendar, justifications)
		if overridden {
			expected = 0
		}

		var summary *report.JustificationSummary
		if match != nil {
			summary = &report.JustificationSummary{
				ID:          match.ID,
				Type:        match.Type,
				Description: match.Description,
			}
		}

		// Floored per day; the running total sums the floored balances so the
		// total always equals the sum of the displayed ones.
		workedMinutes := int(math.Floor(worked))
		record := report.DayRecord{
			Date:            day.Format(dateLayout),
			WorkedMinutes:   workedMinutes,
			ExpectedMinutes: expected,
			BalanceMinutes:  workedMinutes - expected,
			Events:          dayEvents,
			IsHoliday:       isHoliday,
			Justification:   summary,
		}

		// The total reflects every day in range, including the ones display
		// suppression drops below.
		row.TotalBalanceMinutes += record.BalanceMinutes

		// Suppress empty future days and empty non-workdays, but keep any day
		// with activity, a holiday, or a justification.
		include := len(dayEvents) > 0 ||
			(expected > 0 && !day.After(today)) ||
			isHoliday ||
			summary != nil
		if include {
			row.Report = append(row.Report, record)
		}
	}

	return row, nil
}

func negativeDays(days []report.DayRecord) []report.DayRecord {
	out := make([]report.DayRecord, 0, len(days))
	for _, d := range days {
		if d.BalanceMinutes < 0 {
			out = append(out, d)
		}
	}
	return out
}

// dayOf truncates an instant to its UTC calendar date.
func dayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

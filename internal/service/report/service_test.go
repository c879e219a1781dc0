package report

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/employee"
	"github.com/chronoline/attendance-backend-go/internal/domain/holiday"
	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
	"github.com/chronoline/attendance-backend-go/internal/domain/report"
	"github.com/chronoline/attendance-backend-go/internal/domain/shift"
	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string, companyID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.UserID == userID && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListRoster(ctx context.Context, companyID string, filter employee.RosterFilter) ([]employee.Employee, int64, error) {
	var matched []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID != companyID {
			continue
		}
		if filter.UserID != nil && emp.UserID != *filter.UserID {
			continue
		}
		if filter.ShiftRuleID != nil {
			found := false
			for _, sa := range emp.Assignments {
				if sa.ShiftRuleID == *filter.ShiftRuleID {
					found = true
				}
			}
			if emp.LegacyShiftRuleID != nil && *emp.LegacyShiftRuleID == *filter.ShiftRuleID {
				found = true
			}
			if !found {
				continue
			}
		}
		matched = append(matched, emp)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].FullName != matched[j].FullName {
			return matched[i].FullName < matched[j].FullName
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeEventRepo struct {
	events []timeevent.TimeEvent
}

func (f *fakeEventRepo) Create(ctx context.Context, ev timeevent.TimeEvent) (timeevent.TimeEvent, error) {
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeEventRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]timeevent.TimeEvent, error) {
	var out []timeevent.TimeEvent
	for _, ev := range f.events {
		if ev.UserID != userID || ev.Timestamp.Before(from) || ev.Timestamp.After(to) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakeEventRepo) ListMy(ctx context.Context, userID string, filter timeevent.MyTimeEventsFilter) ([]timeevent.TimeEvent, int64, error) {
	return nil, 0, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) ListBetween(ctx context.Context, companyID string, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Before(from) || h.Date.After(to) {
			continue
		}
		if h.CompanyID != nil && *h.CompanyID != companyID {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

type fakeJustificationRepo struct {
	justifications []justification.Justification
}

func (f *fakeJustificationRepo) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	f.justifications = append(f.justifications, j)
	return j, nil
}

func (f *fakeJustificationRepo) GetByID(ctx context.Context, id string, companyID string) (justification.Justification, error) {
	return justification.Justification{}, justification.ErrJustificationNotFound
}

func (f *fakeJustificationRepo) List(ctx context.Context, companyID string, filter justification.JustificationFilter) ([]justification.Justification, int64, error) {
	return nil, 0, nil
}

func (f *fakeJustificationRepo) UpdateStatus(ctx context.Context, id, companyID string, status justification.Status, reviewedBy string, reviewedAt time.Time) error {
	return nil
}

func (f *fakeJustificationRepo) ListApprovedOverlapping(ctx context.Context, userID, companyID string, from, to time.Time) ([]justification.Justification, error) {
	var out []justification.Justification
	for _, j := range f.justifications {
		if j.UserID != userID || j.CompanyID != companyID || j.Status != justification.StatusApproved {
			continue
		}
		if j.EndDate.Before(from) || j.StartDate.After(to) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

// ===== FIXTURES =====

const testCompanyID = "company-1"

var reportNow = time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)

func authedContext(t *testing.T, role, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"company_id": testCompanyID,
		"user_id":    userID,
		"role":       role,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(emps []employee.Employee, events []timeevent.TimeEvent, holidays []holiday.Holiday, justs []justification.Justification, now time.Time) report.ReportService {
	return NewReportService(
		&fakeEmployeeRepo{employees: emps},
		&fakeEventRepo{events: events},
		&fakeHolidayRepo{holidays: holidays},
		&fakeJustificationRepo{justifications: justs},
		clock.Fixed(now),
	)
}

func alice() employee.Employee {
	rule := weekdayRule
	return employee.Employee{
		ID:        "emp-alice",
		UserID:    "user-alice",
		CompanyID: testCompanyID,
		FullName:  "Alice Carter",
		Assignments: []shift.ShiftAssignment{
			{ID: "sa-1", EmployeeID: "emp-alice", ShiftRuleID: rule.ID, Position: 1, Rule: &rule},
		},
	}
}

func userEvent(userID string, kind timeevent.EventType, ts time.Time) timeevent.TimeEvent {
	return timeevent.TimeEvent{
		ID:        fmt.Sprintf("ev-%s-%s", kind, ts.Format("20060102150405")),
		UserID:    userID,
		CompanyID: testCompanyID,
		Type:      kind,
		Timestamp: ts,
	}
}

func singleDayRequest(day time.Time) report.AttendanceReportRequest {
	return report.AttendanceReportRequest{
		StartDate: day,
		EndDate:   day.Add(24*time.Hour - time.Millisecond),
		Page:      1,
		Limit:     10,
	}
}

// ===== REPORT SERVICE TESTS =====

func TestGenerateAttendanceReport_WednesdayScenario(t *testing.T) {
	// Mon-Fri 08:00-17:00 shift with a 60 minute break; a single Wednesday
	// with a punch pattern of 08:05 / 12:00 / 13:00 / 17:10.
	wednesday := date(2024, time.January, 17)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, wednesday.Add(8*time.Hour+5*time.Minute)),
		userEvent("user-alice", timeevent.EventBreakStart, wednesday.Add(12*time.Hour)),
		userEvent("user-alice", timeevent.EventBreakEnd, wednesday.Add(13*time.Hour)),
		userEvent("user-alice", timeevent.EventClockOut, wednesday.Add(17*time.Hour+10*time.Minute)),
	}
	svc := newTestService([]employee.Employee{alice()}, events, nil, nil, reportNow)

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), singleDayRequest(wednesday))

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	row := result.Data[0]
	require.Len(t, row.Report, 1)
	day := row.Report[0]
	assert.Equal(t, "2024-01-17", day.Date)
	assert.Equal(t, 480, day.ExpectedMinutes)
	assert.Equal(t, 485, day.WorkedMinutes)
	assert.Equal(t, 5, day.BalanceMinutes)
	assert.Len(t, day.Events, 4)
	assert.Equal(t, 5, row.TotalBalanceMinutes)
}

func TestGenerateAttendanceReport_Idempotent(t *testing.T) {
	wednesday := date(2024, time.January, 17)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, wednesday.Add(8*time.Hour)),
		userEvent("user-alice", timeevent.EventClockOut, wednesday.Add(16*time.Hour)),
	}
	svc := newTestService([]employee.Employee{alice()}, events, nil, nil, reportNow)
	ctx := authedContext(t, "manager", "user-boss")

	first, err := svc.GenerateAttendanceReport(ctx, singleDayRequest(wednesday))
	require.NoError(t, err)
	second, err := svc.GenerateAttendanceReport(ctx, singleDayRequest(wednesday))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateAttendanceReport_BalanceAndTotalIdentities(t *testing.T) {
	// Full work week, events only on Wednesday: four days at -480 plus
	// Wednesday's +5.
	wednesday := date(2024, time.January, 17)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, wednesday.Add(8*time.Hour+5*time.Minute)),
		userEvent("user-alice", timeevent.EventBreakStart, wednesday.Add(12*time.Hour)),
		userEvent("user-alice", timeevent.EventBreakEnd, wednesday.Add(13*time.Hour)),
		userEvent("user-alice", timeevent.EventClockOut, wednesday.Add(17*time.Hour+10*time.Minute)),
	}
	svc := newTestService([]employee.Employee{alice()}, events, nil, nil, reportNow)
	req := report.AttendanceReportRequest{
		StartDate: date(2024, time.January, 15),
		EndDate:   date(2024, time.January, 21).Add(24*time.Hour - time.Millisecond),
		Page:      1,
		Limit:     10,
	}

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	row := result.Data[0]

	// Mon-Fri displayed (weekend has no shift, no events); every record
	// satisfies balance == worked - expected.
	assert.Len(t, row.Report, 5)
	sum := 0
	for _, day := range row.Report {
		assert.Equal(t, day.WorkedMinutes-day.ExpectedMinutes, day.BalanceMinutes)
		sum += day.BalanceMinutes
	}
	assert.Equal(t, 5-4*480, row.TotalBalanceMinutes)
	assert.Equal(t, sum, row.TotalBalanceMinutes)
}

func TestGenerateAttendanceReport_OnlyIssuesTrimsDaysButKeepsFullTotal(t *testing.T) {
	wednesday := date(2024, time.January, 17)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, wednesday.Add(8*time.Hour+5*time.Minute)),
		userEvent("user-alice", timeevent.EventBreakStart, wednesday.Add(12*time.Hour)),
		userEvent("user-alice", timeevent.EventBreakEnd, wednesday.Add(13*time.Hour)),
		userEvent("user-alice", timeevent.EventClockOut, wednesday.Add(17*time.Hour+10*time.Minute)),
	}
	// Bob worked his full schedule: no issues, filtered out entirely.
	bob := alice()
	bob.ID = "emp-bob"
	bob.UserID = "user-bob"
	bob.FullName = "Bob Dale"
	for day := 15; day <= 19; day++ {
		d := date(2024, time.January, day)
		events = append(events,
			userEvent("user-bob", timeevent.EventClockIn, d.Add(8*time.Hour)),
			userEvent("user-bob", timeevent.EventClockOut, d.Add(17*time.Hour)),
		)
	}
	svc := newTestService([]employee.Employee{alice(), bob}, events, nil, nil, reportNow)
	req := report.AttendanceReportRequest{
		StartDate:  date(2024, time.January, 15),
		EndDate:    date(2024, time.January, 19).Add(24*time.Hour - time.Millisecond),
		Page:       1,
		Limit:      10,
		OnlyIssues: true,
	}

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	row := result.Data[0]
	assert.Equal(t, "emp-alice", row.EmployeeID)
	assert.Len(t, row.Report, 4)
	for _, day := range row.Report {
		assert.Negative(t, day.BalanceMinutes)
	}
	// The total still reflects the untrimmed range, Wednesday's +5 included.
	assert.Equal(t, 5-4*480, row.TotalBalanceMinutes)
}

func TestGenerateAttendanceReport_HolidayZeroesExpectedButKeepsWorked(t *testing.T) {
	wednesday := date(2024, time.January, 17)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, wednesday.Add(8*time.Hour)),
		userEvent("user-alice", timeevent.EventClockOut, wednesday.Add(12*time.Hour)),
	}
	holidays := []holiday.Holiday{{ID: "h1", Date: wednesday, Name: "Founders Day"}}
	svc := newTestService([]employee.Employee{alice()}, events, holidays, nil, reportNow)

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), singleDayRequest(wednesday))

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	require.Len(t, result.Data[0].Report, 1)
	day := result.Data[0].Report[0]
	assert.True(t, day.IsHoliday)
	assert.Equal(t, 0, day.ExpectedMinutes)
	assert.Equal(t, 240, day.WorkedMinutes)
	assert.Equal(t, 240, day.BalanceMinutes)
}

func TestGenerateAttendanceReport_ApprovedJustificationZeroesRange(t *testing.T) {
	justs := []justification.Justification{
		{
			ID:        "j1",
			UserID:    "user-alice",
			CompanyID: testCompanyID,
			Type:      "sick_leave",
			Status:    justification.StatusApproved,
			StartDate: date(2024, time.January, 16),
			EndDate:   date(2024, time.January, 17),
		},
	}
	svc := newTestService([]employee.Employee{alice()}, nil, nil, justs, reportNow)
	req := report.AttendanceReportRequest{
		StartDate: date(2024, time.January, 15),
		EndDate:   date(2024, time.January, 19).Add(24*time.Hour - time.Millisecond),
		Page:      1,
		Limit:     10,
	}

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	row := result.Data[0]
	require.Len(t, row.Report, 5)
	for _, day := range row.Report {
		switch day.Date {
		case "2024-01-16", "2024-01-17":
			assert.Equal(t, 0, day.ExpectedMinutes, "date %s", day.Date)
			require.NotNil(t, day.Justification, "date %s", day.Date)
			assert.Equal(t, "sick_leave", day.Justification.Type)
		default:
			assert.Equal(t, 480, day.ExpectedMinutes, "date %s", day.Date)
			assert.Nil(t, day.Justification, "date %s", day.Date)
		}
	}
}

func TestGenerateAttendanceReport_OpenIntervalCappedAtNow(t *testing.T) {
	// Querying "today" at noon with an unterminated 08:00 clock-in.
	today := date(2024, time.January, 17)
	now := today.Add(12 * time.Hour)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, today.Add(8*time.Hour)),
	}
	svc := newTestService([]employee.Employee{alice()}, events, nil, nil, now)

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), singleDayRequest(today))

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	require.Len(t, result.Data[0].Report, 1)
	assert.Equal(t, 240, result.Data[0].Report[0].WorkedMinutes)
}

func TestGenerateAttendanceReport_FloorPerDayRegression(t *testing.T) {
	// Two Sundays (expected 0 under the weekday assignments): 100.5 worked
	// minutes each floor to 100 before summing, pinning the per-day policy.
	sunday1 := date(2024, time.January, 7)
	sunday2 := date(2024, time.January, 14)
	var events []timeevent.TimeEvent
	for _, d := range []time.Time{sunday1, sunday2} {
		events = append(events,
			userEvent("user-alice", timeevent.EventClockIn, d.Add(8*time.Hour)),
			userEvent("user-alice", timeevent.EventClockOut, d.Add(9*time.Hour+40*time.Minute+30*time.Second)),
		)
	}
	svc := newTestService([]employee.Employee{alice()}, events, nil, nil, reportNow)
	req := report.AttendanceReportRequest{
		StartDate: sunday1,
		EndDate:   sunday2.Add(24*time.Hour - time.Millisecond),
		Page:      1,
		Limit:     10,
	}

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	row := result.Data[0]
	var displayed int
	for _, day := range row.Report {
		if day.Date == sunday1.Format("2006-01-02") || day.Date == sunday2.Format("2006-01-02") {
			assert.Equal(t, 100, day.WorkedMinutes)
		}
		displayed += day.BalanceMinutes
	}
	// 2*100 worked against the week's five expected workdays in between.
	assert.Equal(t, 200-5*480, row.TotalBalanceMinutes)
	assert.Equal(t, displayed, row.TotalBalanceMinutes)
}

func TestGenerateAttendanceReport_EmployeeRoleForcedToOwnData(t *testing.T) {
	bob := alice()
	bob.ID = "emp-bob"
	bob.UserID = "user-bob"
	bob.FullName = "Bob Dale"
	svc := newTestService([]employee.Employee{alice(), bob}, nil, nil, nil, reportNow)

	req := singleDayRequest(date(2024, time.January, 17))
	req.UserID = "user-bob" // attempts to read a coworker's report

	result, err := svc.GenerateAttendanceReport(authedContext(t, "employee", "user-alice"), req)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "emp-alice", result.Data[0].EmployeeID)
}

func TestGenerateAttendanceReport_MalformedShiftIsolatedPerEmployee(t *testing.T) {
	broken := shift.ShiftRule{
		ID:        "rule-broken",
		StartTime: "25:00",
		EndTime:   "17:00",
		WorkDays:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
	bob := employee.Employee{
		ID:        "emp-bob",
		UserID:    "user-bob",
		CompanyID: testCompanyID,
		FullName:  "Bob Dale",
		Assignments: []shift.ShiftAssignment{
			{ID: "sa-b", EmployeeID: "emp-bob", ShiftRuleID: broken.ID, Position: 1, Rule: &broken},
		},
	}
	svc := newTestService([]employee.Employee{alice(), bob}, nil, nil, nil, reportNow)

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), singleDayRequest(date(2024, time.January, 17)))

	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Empty(t, result.Data[0].Error) // Alice Carter sorts first
	bobRow := result.Data[1]
	assert.Contains(t, bobRow.Error, "rule-broken")
	for _, day := range bobRow.Report {
		assert.Equal(t, 0, day.ExpectedMinutes)
	}
}

func TestGenerateAttendanceReport_InvertedRangeRejected(t *testing.T) {
	svc := newTestService([]employee.Employee{alice()}, nil, nil, nil, reportNow)
	req := report.AttendanceReportRequest{
		StartDate: date(2024, time.January, 20),
		EndDate:   date(2024, time.January, 15),
		Page:      1,
		Limit:     10,
	}

	_, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestGenerateAttendanceReport_EmptyRosterForFilterIsNotAnError(t *testing.T) {
	svc := newTestService([]employee.Employee{alice()}, nil, nil, nil, reportNow)
	req := singleDayRequest(date(2024, time.January, 17))
	req.ShiftRuleID = "rule-nobody-has"

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Zero(t, result.Metadata.Total)
}

func TestGenerateAttendanceReport_PaginationStability(t *testing.T) {
	var emps []employee.Employee
	for i := 0; i < 25; i++ {
		emps = append(emps, employee.Employee{
			ID:        fmt.Sprintf("emp-%02d", i),
			UserID:    fmt.Sprintf("user-%02d", i),
			CompanyID: testCompanyID,
			FullName:  "Same Name", // forces the id tie-break
		})
	}
	svc := newTestService(emps, nil, nil, nil, reportNow)
	ctx := authedContext(t, "manager", "user-boss")

	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		req := singleDayRequest(date(2024, time.January, 17))
		req.Page = page
		result, err := svc.GenerateAttendanceReport(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(25), result.Metadata.Total)
		assert.Equal(t, 3, result.Metadata.TotalPages)
		for _, row := range result.Data {
			assert.False(t, seen[row.EmployeeID], "employee %s appeared twice", row.EmployeeID)
			seen[row.EmployeeID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestGenerateAttendanceReport_DisplayInclusion(t *testing.T) {
	// "now" inside the queried range: future empty workdays are suppressed,
	// past empty workdays are shown, and a worked non-workday surfaces as an
	// anomaly.
	now := date(2024, time.January, 17).Add(20 * time.Hour) // Wednesday evening
	sunday := date(2024, time.January, 14)
	events := []timeevent.TimeEvent{
		userEvent("user-alice", timeevent.EventClockIn, sunday.Add(9*time.Hour)),
		userEvent("user-alice", timeevent.EventClockOut, sunday.Add(11*time.Hour)),
	}
	svc := newTestService([]employee.Employee{alice()}, events, nil, nil, now)
	req := report.AttendanceReportRequest{
		StartDate: sunday,
		EndDate:   date(2024, time.January, 19).Add(24*time.Hour - time.Millisecond),
		Page:      1,
		Limit:     10,
	}

	result, err := svc.GenerateAttendanceReport(authedContext(t, "manager", "user-boss"), req)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	var dates []string
	for _, day := range result.Data[0].Report {
		dates = append(dates, day.Date)
	}
	// Sunday (anomalous events), Mon-Wed (past/current workdays); Thu-Fri are
	// empty future workdays and stay hidden.
	assert.Equal(t, []string{"2024-01-14", "2024-01-15", "2024-01-16", "2024-01-17"}, dates)
}

func TestGenerateAttendanceReport_CancelledContextAborts(t *testing.T) {
	svc := newTestService([]employee.Employee{alice()}, nil, nil, nil, reportNow)
	ctx, cancel := context.WithCancel(authedContext(t, "manager", "user-boss"))
	cancel()

	_, err := svc.GenerateAttendanceReport(ctx, singleDayRequest(date(2024, time.January, 17)))

	require.ErrorIs(t, err, context.Canceled)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/report"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

type stubReportService struct {
	lastRequest report.AttendanceReportRequest
	result      report.AttendanceReport
	err         error
}

func (s *stubReportService) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	s.lastRequest = req
	return s.result, s.err
}

func newReportRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance"+query, nil)
}

func TestParseReportQuery_Defaults(t *testing.T) {
	h := &ReportHandlerImpl{clock: clock.Fixed(handlerNow)}

	req, err := h.parseReportQuery(newReportRequest(""))

	require.NoError(t, err)
	assert.Equal(t, handlerNow.AddDate(0, 0, -30), req.StartDate)
	assert.Equal(t, handlerNow, req.EndDate)
	assert.Empty(t, req.UserID)
	assert.False(t, req.OnlyIssues)
}

func TestParseReportQuery_BareEndDateWidensToEndOfDay(t *testing.T) {
	h := &ReportHandlerImpl{clock: clock.Fixed(handlerNow)}

	req, err := h.parseReportQuery(newReportRequest("?startDate=2024-01-15&endDate=2024-01-19"))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), req.StartDate)
	assert.Equal(t, time.Date(2024, time.January, 19, 23, 59, 59, 999000000, time.UTC), req.EndDate)
}

func TestParseReportQuery_TimestampBoundsKeptExact(t *testing.T) {
	h := &ReportHandlerImpl{clock: clock.Fixed(handlerNow)}

	req, err := h.parseReportQuery(newReportRequest("?startDate=2024-01-15T08:30:00Z&endDate=2024-01-15T17:00:00%2B07:00"))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC), req.StartDate)
	// Offset timestamps are normalized to UTC.
	assert.Equal(t, time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC), req.EndDate)
}

func TestParseReportQuery_Filters(t *testing.T) {
	h := &ReportHandlerImpl{clock: clock.Fixed(handlerNow)}

	req, err := h.parseReportQuery(newReportRequest("?userId=user-1&shiftId=rule-1&onlyIssues=true&page=3&limit=25"))

	require.NoError(t, err)
	assert.Equal(t, "user-1", req.UserID)
	assert.Equal(t, "rule-1", req.ShiftRuleID)
	assert.True(t, req.OnlyIssues)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.Limit)
}

func TestParseReportQuery_InvalidValues(t *testing.T) {
	h := &ReportHandlerImpl{clock: clock.Fixed(handlerNow)}

	tests := []struct {
		name  string
		query string
	}{
		{"bad start date", "?startDate=15-01-2024"},
		{"bad end date", "?endDate=tomorrow"},
		{"zero page", "?page=0"},
		{"non-numeric limit", "?limit=many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.parseReportQuery(newReportRequest(tt.query))
			assert.Error(t, err)
		})
	}
}

func TestGetAttendanceReport_EnvelopeAndMeta(t *testing.T) {
	svc := &stubReportService{
		result: report.AttendanceReport{
			Data: []report.EmployeeReport{
				{EmployeeID: "emp-1", FullName: "Alice Carter", Report: []report.DayRecord{}},
			},
			Metadata: report.Metadata{Total: 11, Page: 2, Limit: 10, TotalPages: 2},
		},
	}
	h := NewReportHandler(svc, clock.Fixed(handlerNow))

	rec := httptest.NewRecorder()
	h.GetAttendanceReport(rec, newReportRequest("?page=2"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			EmployeeID string `json:"employee_id"`
		} `json:"data"`
		Meta struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalItems int64 `json:"total_items"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "emp-1", body.Data[0].EmployeeID)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, int64(11), body.Meta.TotalItems)
	assert.Equal(t, 2, body.Meta.TotalPages)

	assert.Equal(t, 2, svc.lastRequest.Page)
}

func TestGetAttendanceReport_InvalidQueryRejected(t *testing.T) {
	svc := &stubReportService{}
	h := NewReportHandler(svc, clock.Fixed(handlerNow))

	rec := httptest.NewRecorder()
	h.GetAttendanceReport(rec, newReportRequest("?startDate=bogus"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.lastRequest)
}

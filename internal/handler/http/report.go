package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/report"
	"github.com/chronoline/attendance-backend-go/internal/handler/http/response"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	clock         clock.Clock
}

func NewReportHandler(reportService report.ReportService, clk clock.Clock) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		clock:         clk,
	}
}

// GetAttendanceReport implements ReportHandler.
func (h *ReportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseReportQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		slog.Error("GetAttendanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Metadata.Page,
		Limit:      result.Metadata.Limit,
		TotalItems: result.Metadata.Total,
		TotalPages: result.Metadata.TotalPages,
	})
}

// parseReportQuery reads the report query parameters. Bounds accept either a
// bare date or an ISO8601 timestamp; a bare end date is widened to the end of
// that day. With no bounds at all the report covers the last 30 days.
func (h *ReportHandlerImpl) parseReportQuery(r *http.Request) (report.AttendanceReportRequest, error) {
	q := r.URL.Query()
	var errs validator.ValidationErrors

	req := report.AttendanceReportRequest{
		UserID:      q.Get("userId"),
		ShiftRuleID: q.Get("shiftId"),
		OnlyIssues:  q.Get("onlyIssues") == "true",
	}

	now := h.clock.Now()
	req.StartDate = now.AddDate(0, 0, -30)
	req.EndDate = now

	if raw := q.Get("startDate"); raw != "" {
		parsed, ok := parseDateOrDateTime(raw, false)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be YYYY-MM-DD or an ISO8601 timestamp"})
		} else {
			req.StartDate = parsed
		}
	}
	if raw := q.Get("endDate"); raw != "" {
		parsed, ok := parseDateOrDateTime(raw, true)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be YYYY-MM-DD or an ISO8601 timestamp"})
		} else {
			req.EndDate = parsed
		}
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			errs = append(errs, validator.ValidationError{Field: "page", Message: "must be a positive integer"})
		} else {
			req.Page = page
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			errs = append(errs, validator.ValidationError{Field: "limit", Message: "must be a positive integer"})
		} else {
			req.Limit = limit
		}
	}

	if len(errs) > 0 {
		return report.AttendanceReportRequest{}, errs
	}
	return req, nil
}

func parseDateOrDateTime(raw string, endOfDay bool) (time.Time, bool) {
	if t, ok := validator.IsValidDateTime(raw); ok {
		return t.UTC(), true
	}
	t, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return t, true
}

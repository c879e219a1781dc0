package report

import "context"

type ReportService interface {
	// GenerateAttendanceReport reconciles worked vs expected minutes per
	// employee per day over the requested range. It is a pure function of the
	// request, the injected clock and the backing data: identical inputs
	// produce identical output.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}

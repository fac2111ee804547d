package attendance

import (
	"context"
	"io"
)

// PayrollService ingests schedule grids and manages the computed monthly
// attendance records.
type PayrollService interface {
	IngestGrid(ctx context.Context, schoolID string, blocks []Block, ym YearMonth) ([]MonthlyAttendanceResponse, error)
	IngestWorkbook(ctx context.Context, schoolID string, r io.Reader, ym YearMonth) ([]MonthlyAttendanceResponse, error)

	Get(ctx context.Context, ym YearMonth, teacherID string) (MonthlyAttendanceResponse, error)
	Update(ctx context.Context, ym YearMonth, teacherID string, req UpdateAttendanceRequest) (MonthlyAttendanceResponse, error)
	ListBySchool(ctx context.Context, schoolID string, ym YearMonth) ([]MonthlyAttendanceResponse, error)
	ListBetween(ctx context.Context, schoolID string, start, end YearMonth) ([]MonthlyAttendanceResponse, error)
	DeleteBySchool(ctx context.Context, schoolID string, ym YearMonth) ([]MonthlyAttendanceResponse, error)
}

package attendance

import "context"

// MonthlyAttendanceRepository defines data access for computed attendance
// records. Keys follow the store contract: record_type
// "attendance#{year}-{month:02}" plus the teacher id. Save is an upsert of
// the whole record; there are no partial updates.
type MonthlyAttendanceRepository interface {
	Get(ctx context.Context, ym YearMonth, teacherID string) (MonthlyAttendance, error)
	ListBySchool(ctx context.Context, schoolID string, ym YearMonth) ([]MonthlyAttendance, error)
	Save(ctx context.Context, schoolID string, ma MonthlyAttendance) error
	Delete(ctx context.Context, ym YearMonth, teacherID string) error
}

// TransactionManager runs fn atomically: repository calls made with the
// context fn receives either all commit or all roll back.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

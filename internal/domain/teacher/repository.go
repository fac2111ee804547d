package teacher

import "context"

// TeacherRepository defines data access for teacher pay profiles. Records
// are keyed (record_type="teacher", id) in the backing store.
type TeacherRepository interface {
	GetByID(ctx context.Context, id string) (Teacher, error)
	ListBySchool(ctx context.Context, schoolID string) ([]Teacher, error)
	Save(ctx context.Context, t Teacher) error
	Delete(ctx context.Context, id string) error
}

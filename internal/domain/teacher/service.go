package teacher

import "context"

type TeacherService interface {
	Create(ctx context.Context, req CreateTeacherRequest) (TeacherResponse, error)
	GetByID(ctx context.Context, id string) (TeacherResponse, error)
	ListBySchool(ctx context.Context, schoolID string) ([]TeacherResponse, error)
	Update(ctx context.Context, id string, req UpdateTeacherRequest) (TeacherResponse, error)
	Delete(ctx context.Context, id string) error
}

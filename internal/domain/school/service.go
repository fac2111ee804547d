package school

import "context"

type SchoolService interface {
	Create(ctx context.Context, req CreateSchoolRequest) (SchoolResponse, error)
	GetByID(ctx context.Context, id string) (SchoolResponse, error)
	List(ctx context.Context) ([]SchoolResponse, error)
	Update(ctx context.Context, id string, req CreateSchoolRequest) (SchoolResponse, error)
	Delete(ctx context.Context, id string) error
}

package school

import "context"

// SchoolRepository defines data access for school records, keyed
// (record_type="meta", id) in the backing store.
type SchoolRepository interface {
	GetByID(ctx context.Context, id string) (School, error)
	List(ctx context.Context) ([]School, error)
	Save(ctx context.Context, s School) error
	Delete(ctx context.Context, id string) error
}

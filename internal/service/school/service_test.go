package school

import (
	"context"
	"testing"

	"github.com/jukulabs/juku-backend-go/internal/domain/school"
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSchoolRepo struct {
	schools map[string]school.School
}

func newMemSchoolRepo() *memSchoolRepo {
	return &memSchoolRepo{schools: make(map[string]school.School)}
}

func (r *memSchoolRepo) GetByID(_ context.Context, id string) (school.School, error) {
	sc, ok := r.schools[id]
	if !ok {
		return school.School{}, school.ErrSchoolNotFound
	}
	return sc, nil
}

func (r *memSchoolRepo) List(_ context.Context) ([]school.School, error) {
	var out []school.School
	for _, sc := range r.schools {
		out = append(out, sc)
	}
	return out, nil
}

func (r *memSchoolRepo) Save(_ context.Context, sc school.School) error {
	r.schools[sc.ID] = sc
	return nil
}

func (r *memSchoolRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.schools[id]; !ok {
		return school.ErrSchoolNotFound
	}
	delete(r.schools, id)
	return nil
}

func TestCreateSchool(t *testing.T) {
	repo := newMemSchoolRepo()
	svc := NewSchoolService(repo)

	resp, err := svc.Create(context.Background(), school.CreateSchoolRequest{Name: "本校"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "本校", resp.Name)
	assert.Contains(t, repo.schools, resp.ID)
}

func TestCreateSchoolValidation(t *testing.T) {
	svc := NewSchoolService(newMemSchoolRepo())

	_, err := svc.Create(context.Background(), school.CreateSchoolRequest{})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "school_name")
}

func TestCreateSchoolDuplicateName(t *testing.T) {
	svc := NewSchoolService(newMemSchoolRepo())

	_, err := svc.Create(context.Background(), school.CreateSchoolRequest{Name: "本校"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), school.CreateSchoolRequest{Name: "本校"})
	assert.ErrorIs(t, err, school.ErrSchoolNameExists)
}

func TestUpdateSchool(t *testing.T) {
	svc := NewSchoolService(newMemSchoolRepo())

	created, err := svc.Create(context.Background(), school.CreateSchoolRequest{Name: "本校"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, school.CreateSchoolRequest{Name: "駅前校"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "駅前校", updated.Name)
}

func TestDeleteSchool(t *testing.T) {
	repo := newMemSchoolRepo()
	svc := NewSchoolService(repo)

	created, err := svc.Create(context.Background(), school.CreateSchoolRequest{Name: "本校"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.schools)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), school.ErrSchoolNotFound)
}

func TestGetSchoolNotFound(t *testing.T) {
	svc := NewSchoolService(newMemSchoolRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, school.ErrSchoolNotFound)
}

package teacher

import (
	"context"
	"testing"

	"github.com/jukulabs/juku-backend-go/internal/domain/school"
	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTeacherRepo struct {
	teachers map[string]teacher.Teacher
}

func newMemTeacherRepo() *memTeacherRepo {
	return &memTeacherRepo{teachers: make(map[string]teacher.Teacher)}
}

func (r *memTeacherRepo) GetByID(_ context.Context, id string) (teacher.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return teacher.Teacher{}, teacher.ErrTeacherNotFound
	}
	return t, nil
}

func (r *memTeacherRepo) ListBySchool(_ context.Context, schoolID string) ([]teacher.Teacher, error) {
	var out []teacher.Teacher
	for _, t := range r.teachers {
		if t.SchoolID == schoolID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTeacherRepo) Save(_ context.Context, t teacher.Teacher) error {
	r.teachers[t.ID] = t
	return nil
}

func (r *memTeacherRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.teachers[id]; !ok {
		return teacher.ErrTeacherNotFound
	}
	delete(r.teachers, id)
	return nil
}

type memSchoolRepo struct {
	schools map[string]school.School
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
	delete(r.schools, id)
	return nil
}

const testSchoolID = "0190f6a2-0000-7000-8000-00000000000a"

func newTestService() (teacher.TeacherService, *memTeacherRepo) {
	teacherRepo := newMemTeacherRepo()
	schoolRepo := &memSchoolRepo{schools: map[string]school.School{
		testSchoolID: {ID: testSchoolID, Name: "本校"},
	}}
	return NewTeacherService(teacherRepo, schoolRepo), teacherRepo
}

func createRequest() teacher.CreateTeacherRequest {
	return teacher.CreateTeacherRequest{
		SchoolID:                testSchoolID,
		DisplayName:             "田中",
		GivenName:               "太郎",
		FamilyName:              "田中",
		LectureHourlyPay:        decimal.NewFromInt(2000),
		OfficeHourlyPay:         decimal.NewFromInt(1500),
		TransportationFeePerDay: decimal.NewFromInt(500),
	}
}

func TestCreateTeacher(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testSchoolID, resp.SchoolID)
	assert.Equal(t, "田中", resp.DisplayName)
	assert.Contains(t, repo.teachers, resp.ID)
}

func TestCreateTeacherValidation(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.DisplayName = ""
	req.LectureHourlyPay = decimal.NewFromInt(-1)

	_, err := svc.Create(context.Background(), req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "display_name")
	assert.Contains(t, validationErrs.ToMap(), "lecture_hourly_pay")
}

func TestCreateTeacherUnknownSchool(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.SchoolID = "missing"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, school.ErrSchoolNotFound)
}

func TestCreateTeacherDuplicateDisplayName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, teacher.ErrDisplayNameExists)
}

func TestUpdateTeacher(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	newPay := decimal.NewFromInt(2500)
	resp, err := svc.Update(context.Background(), created.ID, teacher.UpdateTeacherRequest{
		LectureHourlyPay: &newPay,
	})
	require.NoError(t, err)

	// Only the provided field changes.
	assert.True(t, resp.LectureHourlyPay.Equal(newPay))
	assert.Equal(t, "田中", resp.DisplayName)
	assert.True(t, resp.OfficeHourlyPay.Equal(decimal.NewFromInt(1500)))
}

func TestUpdateTeacherNotFound(t *testing.T) {
	svc, _ := newTestService()

	name := "新しい名前"
	_, err := svc.Update(context.Background(), "missing", teacher.UpdateTeacherRequest{DisplayName: &name})
	assert.ErrorIs(t, err, teacher.ErrTeacherNotFound)
}

func TestDeleteTeacher(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.NotContains(t, repo.teachers, created.ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), teacher.ErrTeacherNotFound)
}

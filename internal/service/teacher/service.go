package teacher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jukulabs/juku-backend-go/internal/domain/school"
	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
)

type TeacherServiceImpl struct {
	teacherRepo teacher.TeacherRepository
	schoolRepo  school.SchoolRepository
}

func NewTeacherService(teacherRepo teacher.TeacherRepository, schoolRepo school.SchoolRepository) teacher.TeacherService {
	return &TeacherServiceImpl{
		teacherRepo: teacherRepo,
		schoolRepo:  schoolRepo,
	}
}

func (s *TeacherServiceImpl) Create(ctx context.Context, req teacher.CreateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	if _, err := s.schoolRepo.GetByID(ctx, req.SchoolID); err != nil {
		return teacher.TeacherResponse{}, err
	}

	existing, err := s.teacherRepo.ListBySchool(ctx, req.SchoolID)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	for _, t := range existing {
		if t.DisplayName == req.DisplayName {
			return teacher.TeacherResponse{}, teacher.ErrDisplayNameExists
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return teacher.TeacherResponse{}, fmt.Errorf("generate teacher id: %w", err)
	}

	t := teacher.Teacher{
		ID:                      id.String(),
		SchoolID:                req.SchoolID,
		DisplayName:             req.DisplayName,
		GivenName:               req.GivenName,
		FamilyName:              req.FamilyName,
		LectureHourlyPay:        req.LectureHourlyPay,
		OfficeHourlyPay:         req.OfficeHourlyPay,
		TransportationFeePerDay: req.TransportationFeePerDay,
		FixedMonthlyAddition:    req.FixedMonthlyAddition,
	}

	if err := s.teacherRepo.Save(ctx, t); err != nil {
		return teacher.TeacherResponse{}, fmt.Errorf("save teacher: %w", err)
	}

	return mapToResponse(t), nil
}

func (s *TeacherServiceImpl) GetByID(ctx context.Context, id string) (teacher.TeacherResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	return mapToResponse(t), nil
}

func (s *TeacherServiceImpl) ListBySchool(ctx context.Context, schoolID string) ([]teacher.TeacherResponse, error) {
	teachers, err := s.teacherRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	result := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		result = append(result, mapToResponse(t))
	}
	return result, nil
}

func (s *TeacherServiceImpl) Update(ctx context.Context, id string, req teacher.UpdateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	t, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	if req.DisplayName != nil {
		t.DisplayName = *req.DisplayName
	}
	if req.GivenName != nil {
		t.GivenName = *req.GivenName
	}
	if req.FamilyName != nil {
		t.FamilyName = *req.FamilyName
	}
	if req.LectureHourlyPay != nil {
		t.LectureHourlyPay = *req.LectureHourlyPay
	}
	if req.OfficeHourlyPay != nil {
		t.OfficeHourlyPay = *req.OfficeHourlyPay
	}
	if req.TransportationFeePerDay != nil {
		t.TransportationFeePerDay = *req.TransportationFeePerDay
	}
	if req.FixedMonthlyAddition != nil {
		t.FixedMonthlyAddition = *req.FixedMonthlyAddition
	}

	if err := s.teacherRepo.Save(ctx, t); err != nil {
		return teacher.TeacherResponse{}, fmt.Errorf("save teacher: %w", err)
	}

	return mapToResponse(t), nil
}

func (s *TeacherServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.teacherRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.teacherRepo.Delete(ctx, id)
}

func mapToResponse(t teacher.Teacher) teacher.TeacherResponse {
	return teacher.TeacherResponse{
		ID:                      t.ID,
		SchoolID:                t.SchoolID,
		DisplayName:             t.DisplayName,
		GivenName:               t.GivenName,
		FamilyName:              t.FamilyName,
		LectureHourlyPay:        t.LectureHourlyPay,
		OfficeHourlyPay:         t.OfficeHourlyPay,
		TransportationFeePerDay: t.TransportationFeePerDay,
		FixedMonthlyAddition:    t.FixedMonthlyAddition,
	}
}

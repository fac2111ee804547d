package school

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jukulabs/juku-backend-go/internal/domain/school"
)

type SchoolServiceImpl struct {
	schoolRepo school.SchoolRepository
}

func NewSchoolService(schoolRepo school.SchoolRepository) school.SchoolService {
	return &SchoolServiceImpl{schoolRepo: schoolRepo}
}

func (s *SchoolServiceImpl) Create(ctx context.Context, req school.CreateSchoolRequest) (school.SchoolResponse, error) {
	if err := req.Validate(); err != nil {
		return school.SchoolResponse{}, err
	}

	existing, err := s.schoolRepo.List(ctx)
	if err != nil {
		return school.SchoolResponse{}, err
	}
	for _, sc := range existing {
		if sc.Name == req.Name {
			return school.SchoolResponse{}, school.ErrSchoolNameExists
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return school.SchoolResponse{}, fmt.Errorf("generate school id: %w", err)
	}

	sc := school.School{ID: id.String(), Name: req.Name}
	if err := s.schoolRepo.Save(ctx, sc); err != nil {
		return school.SchoolResponse{}, fmt.Errorf("save school: %w", err)
	}

	return school.SchoolResponse(sc), nil
}

func (s *SchoolServiceImpl) GetByID(ctx context.Context, id string) (school.SchoolResponse, error) {
	sc, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		return school.SchoolResponse{}, err
	}
	return school.SchoolResponse(sc), nil
}

func (s *SchoolServiceImpl) List(ctx context.Context) ([]school.SchoolResponse, error) {
	schools, err := s.schoolRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]school.SchoolResponse, 0, len(schools))
	for _, sc := range schools {
		result = append(result, school.SchoolResponse(sc))
	}
	return result, nil
}

func (s *SchoolServiceImpl) Update(ctx context.Context, id string, req school.CreateSchoolRequest) (school.SchoolResponse, error) {
	if err := req.Validate(); err != nil {
		return school.SchoolResponse{}, err
	}

	sc, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		return school.SchoolResponse{}, err
	}

	sc.Name = req.Name
	if err := s.schoolRepo.Save(ctx, sc); err != nil {
		return school.SchoolResponse{}, fmt.Errorf("save school: %w", err)
	}

	return school.SchoolResponse(sc), nil
}

func (s *SchoolServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.schoolRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.schoolRepo.Delete(ctx, id)
}

package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jukulabs/juku-backend-go/internal/domain/school"
	"github.com/jukulabs/juku-backend-go/internal/pkg/database"
)

const schoolRecordType = "meta"

type SchoolRepositoryPostgreSQL struct {
	db *database.DB
}

func NewSchoolRepositoryPostgreSQL(db *database.DB) school.SchoolRepository {
	return &SchoolRepositoryPostgreSQL{db: db}
}

func (r *SchoolRepositoryPostgreSQL) GetByID(ctx context.Context, id string) (school.School, error) {
	payload, err := getRecord(ctx, r.db, schoolRecordType, id)
	if err != nil {
		if errors.Is(err, errRecordNotFound) {
			return school.School{}, school.ErrSchoolNotFound
		}
		return school.School{}, err
	}

	var s school.School
	if err := json.Unmarshal(payload, &s); err != nil {
		return school.School{}, fmt.Errorf("decode school %s: %w", id, err)
	}
	return s, nil
}

func (r *SchoolRepositoryPostgreSQL) List(ctx context.Context) ([]school.School, error) {
	payloads, err := listRecords(ctx, r.db, schoolRecordType)
	if err != nil {
		return nil, err
	}

	schools := make([]school.School, 0, len(payloads))
	for _, payload := range payloads {
		var s school.School
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("decode school record: %w", err)
		}
		schools = append(schools, s)
	}
	return schools, nil
}

func (r *SchoolRepositoryPostgreSQL) Save(ctx context.Context, s school.School) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode school %s: %w", s.ID, err)
	}
	return saveRecord(ctx, r.db, schoolRecordType, s.ID, s.ID, payload)
}

func (r *SchoolRepositoryPostgreSQL) Delete(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r.db, schoolRecordType, id); err != nil {
		if errors.Is(err, errRecordNotFound) {
			return school.ErrSchoolNotFound
		}
		return err
	}
	return nil
}

package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/pkg/database"
)

const teacherRecordType = "teacher"

type TeacherRepositoryPostgreSQL struct {
	db *database.DB
}

func NewTeacherRepositoryPostgreSQL(db *database.DB) teacher.TeacherRepository {
	return &TeacherRepositoryPostgreSQL{db: db}
}

func (r *TeacherRepositoryPostgreSQL) GetByID(ctx context.Context, id string) (teacher.Teacher, error) {
	payload, err := getRecord(ctx, r.db, teacherRecordType, id)
	if err != nil {
		if errors.Is(err, errRecordNotFound) {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, err
	}

	var t teacher.Teacher
	if err := json.Unmarshal(payload, &t); err != nil {
		return teacher.Teacher{}, fmt.Errorf("decode teacher %s: %w", id, err)
	}
	return t, nil
}

func (r *TeacherRepositoryPostgreSQL) ListBySchool(ctx context.Context, schoolID string) ([]teacher.Teacher, error) {
	payloads, err := queryBySchool(ctx, r.db, schoolID, teacherRecordType)
	if err != nil {
		return nil, err
	}

	teachers := make([]teacher.Teacher, 0, len(payloads))
	for _, payload := range payloads {
		var t teacher.Teacher
		if err := json.Unmarshal(payload, &t); err != nil {
			return nil, fmt.Errorf("decode teacher record: %w", err)
		}
		teachers = append(teachers, t)
	}
	return teachers, nil
}

func (r *TeacherRepositoryPostgreSQL) Save(ctx context.Context, t teacher.Teacher) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode teacher %s: %w", t.ID, err)
	}
	return saveRecord(ctx, r.db, teacherRecordType, t.ID, t.SchoolID, payload)
}

func (r *TeacherRepositoryPostgreSQL) Delete(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r.db, teacherRecordType, id); err != nil {
		if errors.Is(err, errRecordNotFound) {
			return teacher.ErrTeacherNotFound
		}
		return err
	}
	return nil
}

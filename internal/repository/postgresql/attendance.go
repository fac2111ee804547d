package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/pkg/database"
)

type MonthlyAttendanceRepositoryPostgreSQL struct {
	db *database.DB
}

func NewMonthlyAttendanceRepositoryPostgreSQL(db *database.DB) attendance.MonthlyAttendanceRepository {
	return &MonthlyAttendanceRepositoryPostgreSQL{db: db}
}

func (r *MonthlyAttendanceRepositoryPostgreSQL) Get(ctx context.Context, ym attendance.YearMonth, teacherID string) (attendance.MonthlyAttendance, error) {
	payload, err := getRecord(ctx, r.db, ym.RecordType(), teacherID)
	if err != nil {
		if errors.Is(err, errRecordNotFound) {
			return attendance.MonthlyAttendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.MonthlyAttendance{}, err
	}

	var ma attendance.MonthlyAttendance
	if err := json.Unmarshal(payload, &ma); err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("decode attendance %s/%s: %w", ym.Text(), teacherID, err)
	}
	return ma, nil
}

// ListBySchool returns a school's attendance records for ym. A YearMonth
// with Month zero matches every month of that year through the record type
// prefix.
func (r *MonthlyAttendanceRepositoryPostgreSQL) ListBySchool(ctx context.Context, schoolID string, ym attendance.YearMonth) ([]attendance.MonthlyAttendance, error) {
	payloads, err := queryBySchool(ctx, r.db, schoolID, ym.RecordType())
	if err != nil {
		return nil, err
	}

	records := make([]attendance.MonthlyAttendance, 0, len(payloads))
	for _, payload := range payloads {
		var ma attendance.MonthlyAttendance
		if err := json.Unmarshal(payload, &ma); err != nil {
			return nil, fmt.Errorf("decode attendance record: %w", err)
		}
		records = append(records, ma)
	}
	return records, nil
}

func (r *MonthlyAttendanceRepositoryPostgreSQL) Save(ctx context.Context, schoolID string, ma attendance.MonthlyAttendance) error {
	payload, err := json.Marshal(ma)
	if err != nil {
		return fmt.Errorf("encode attendance %s/%s: %w", ma.RecordType(), ma.Teacher.ID, err)
	}
	return saveRecord(ctx, r.db, ma.RecordType(), ma.Teacher.ID, schoolID, payload)
}

func (r *MonthlyAttendanceRepositoryPostgreSQL) Delete(ctx context.Context, ym attendance.YearMonth, teacherID string) error {
	if err := deleteRecord(ctx, r.db, ym.RecordType(), teacherID); err != nil {
		if errors.Is(err, errRecordNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return err
	}
	return nil
}

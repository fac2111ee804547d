package payroll

import (
	"context"
	"fmt"
	"io"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/domain/tax"
	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/pkg/sheet"
	"github.com/jukulabs/juku-backend-go/internal/service/timesheet"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.MonthlyAttendanceRepository
	teacherRepo    teacher.TeacherRepository
	txManager      attendance.TransactionManager
	extractor      *timesheet.Extractor
	taxTable       *tax.Table
}

func NewPayrollService(
	attendanceRepo attendance.MonthlyAttendanceRepository,
	teacherRepo teacher.TeacherRepository,
	txManager attendance.TransactionManager,
	extractor *timesheet.Extractor,
	taxTable *tax.Table,
) attendance.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		teacherRepo:    teacherRepo,
		txManager:      txManager,
		extractor:      extractor,
		taxTable:       taxTable,
	}
}

// IngestGrid runs the full pipeline over a posted schedule grid: extract
// timeslots per teacher, compose every monthly record in memory, then
// persist the whole batch in one transaction. A failure anywhere leaves
// the store untouched.
func (s *PayrollServiceImpl) IngestGrid(ctx context.Context, schoolID string, blocks []attendance.Block, ym attendance.YearMonth) ([]attendance.MonthlyAttendanceResponse, error) {
	if ym.Month == 0 {
		return nil, fmt.Errorf("%w: ingestion needs a specific month", attendance.ErrInvalidPeriod)
	}

	teachers, err := s.teacherRepo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list teachers for school %s: %w", schoolID, err)
	}

	perTeacher, err := s.extractor.Extract(blocks, teachers, ym)
	if err != nil {
		return nil, fmt.Errorf("extract timeslots: %w", err)
	}

	records := make([]attendance.MonthlyAttendance, 0, len(teachers))
	for _, t := range teachers {
		record, err := Compose(t, perTeacher[t.ID], 0, "", s.taxTable, ym)
		if err != nil {
			return nil, fmt.Errorf("compose salary for teacher %s: %w", t.ID, err)
		}
		records = append(records, record)
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, record := range records {
			if err := s.attendanceRepo.Save(txCtx, schoolID, record); err != nil {
				return fmt.Errorf("save attendance for teacher %s: %w", record.Teacher.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapToResponses(records), nil
}

// IngestWorkbook reads an uploaded xlsx class sheet and ingests its grid.
func (s *PayrollServiceImpl) IngestWorkbook(ctx context.Context, schoolID string, r io.Reader, ym attendance.YearMonth) ([]attendance.MonthlyAttendanceResponse, error) {
	blocks, err := sheet.ReadClassWorkbook(r, ym.Month)
	if err != nil {
		return nil, fmt.Errorf("read class workbook: %w", err)
	}
	return s.IngestGrid(ctx, schoolID, blocks, ym)
}

func (s *PayrollServiceImpl) Get(ctx context.Context, ym attendance.YearMonth, teacherID string) (attendance.MonthlyAttendanceResponse, error) {
	record, err := s.attendanceRepo.Get(ctx, ym, teacherID)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}
	return mapToResponse(record), nil
}

// Update recomputes a record from a new timeslot list, extra payment and
// remark. The stored record only contributes the teacher pay snapshot;
// everything derived is rebuilt.
func (s *PayrollServiceImpl) Update(ctx context.Context, ym attendance.YearMonth, teacherID string, req attendance.UpdateAttendanceRequest) (attendance.MonthlyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.Get(ctx, ym, teacherID)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	record, err := Compose(existing.Teacher, req.Timeslots, req.ExtraPayment, req.Remark, s.taxTable, ym)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}

	if err := s.attendanceRepo.Save(ctx, existing.Teacher.SchoolID, record); err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("save attendance for teacher %s: %w", teacherID, err)
	}

	return mapToResponse(record), nil
}

func (s *PayrollServiceImpl) ListBySchool(ctx context.Context, schoolID string, ym attendance.YearMonth) ([]attendance.MonthlyAttendanceResponse, error) {
	records, err := s.attendanceRepo.ListBySchool(ctx, schoolID, ym)
	if err != nil {
		return nil, err
	}
	return mapToResponses(records), nil
}

func (s *PayrollServiceImpl) ListBetween(ctx context.Context, schoolID string, start, end attendance.YearMonth) ([]attendance.MonthlyAttendanceResponse, error) {
	if start.Month == 0 || end.Month == 0 {
		return nil, fmt.Errorf("%w: range bounds need specific months", attendance.ErrInvalidPeriod)
	}
	if start.Year*12+start.Month > end.Year*12+end.Month {
		return nil, fmt.Errorf("%w: start %s is after end %s", attendance.ErrInvalidPeriod, start.Text(), end.Text())
	}

	var result []attendance.MonthlyAttendanceResponse
	for ym := start; ym.Year*12+ym.Month <= end.Year*12+end.Month; ym = nextMonth(ym) {
		records, err := s.attendanceRepo.ListBySchool(ctx, schoolID, ym)
		if err != nil {
			return nil, err
		}
		result = append(result, mapToResponses(records)...)
	}
	return result, nil
}

func (s *PayrollServiceImpl) DeleteBySchool(ctx context.Context, schoolID string, ym attendance.YearMonth) ([]attendance.MonthlyAttendanceResponse, error) {
	records, err := s.attendanceRepo.ListBySchool(ctx, schoolID, ym)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, record := range records {
			target := attendance.YearMonth{Year: record.Year, Month: record.Month}
			if err := s.attendanceRepo.Delete(txCtx, target, record.Teacher.ID); err != nil {
				return fmt.Errorf("delete attendance for teacher %s: %w", record.Teacher.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapToResponses(records), nil
}

func nextMonth(ym attendance.YearMonth) attendance.YearMonth {
	if ym.Month == 12 {
		return attendance.YearMonth{Year: ym.Year + 1, Month: 1}
	}
	return attendance.YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// ========== HELPERS ==========

func mapToResponse(ma attendance.MonthlyAttendance) attendance.MonthlyAttendanceResponse {
	return attendance.MonthlyAttendanceResponse{
		Year:  ma.Year,
		Month: ma.Month,

		Teacher: teacher.TeacherResponse{
			ID:                      ma.Teacher.ID,
			SchoolID:                ma.Teacher.SchoolID,
			DisplayName:             ma.Teacher.DisplayName,
			GivenName:               ma.Teacher.GivenName,
			FamilyName:              ma.Teacher.FamilyName,
			LectureHourlyPay:        ma.Teacher.LectureHourlyPay,
			OfficeHourlyPay:         ma.Teacher.OfficeHourlyPay,
			TransportationFeePerDay: ma.Teacher.TransportationFeePerDay,
			FixedMonthlyAddition:    ma.Teacher.FixedMonthlyAddition,
		},
		Timeslots: ma.Timeslots,

		DailyLectureMinutes:   ma.DailyLectureMinutes,
		DailyOfficeMinutes:    ma.DailyOfficeMinutes,
		DailyLateNightMinutes: ma.DailyLateNightMinutes,
		DailyOvertimeMinutes:  ma.DailyOvertimeMinutes,
		DailyAttended:         ma.DailyAttended,

		MonthlyGrossSalary:       ma.MonthlyGrossSalary,
		MonthlyTaxAmount:         ma.MonthlyTaxAmount,
		MonthlyTransportationFee: ma.MonthlyTransportationFee,

		ExtraPayment: ma.ExtraPayment,
		Remark:       ma.Remark,
	}
}

func mapToResponses(records []attendance.MonthlyAttendance) []attendance.MonthlyAttendanceResponse {
	result := make([]attendance.MonthlyAttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}
	return result
}

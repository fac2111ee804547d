package payroll

import (
	"fmt"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/domain/tax"
	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/shopspring/decimal"
)

// Compose turns a teacher's monthly timeslot list into the fully computed
// attendance record. It is a pure function: identical inputs always produce
// an identical record, so recomputing from a stored record's own timeslots,
// extra payment and remark reproduces it exactly.
func Compose(t teacher.Teacher, timeslots []attendance.Timeslot, extraPayment int64, remark string, table *tax.Table, ym attendance.YearMonth) (attendance.MonthlyAttendance, error) {
	if ym.Month == 0 {
		return attendance.MonthlyAttendance{}, fmt.Errorf("%w: salary composition needs a specific month", attendance.ErrInvalidPeriod)
	}

	sorted := make([]attendance.Timeslot, len(timeslots))
	copy(sorted, timeslots)
	attendance.SortTimeslots(sorted)

	for i, ts := range sorted {
		if err := ts.Validate(); err != nil {
			return attendance.MonthlyAttendance{}, fmt.Errorf("timeslot %d: %w", i, err)
		}
	}

	totals := calculateDailyTotals(ym, bucketByDay(sorted), t.LectureHourlyPay, t.OfficeHourlyPay)

	gross := decimal.Zero
	attendedDays := 0
	for i := range totals.salary {
		gross = gross.Add(totals.salary[i])
		if totals.attended[i] {
			attendedDays++
		}
	}
	gross = gross.Add(t.FixedMonthlyAddition).Truncate(0)

	transportation := decimal.NewFromInt(int64(attendedDays)).Mul(t.TransportationFeePerDay).Truncate(0)

	grossForTax := gross.Add(decimal.NewFromInt(extraPayment))
	taxAmount, err := table.Amount(grossForTax)
	if err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("teacher %s %s: %w", t.ID, ym.Text(), err)
	}

	return attendance.MonthlyAttendance{
		Year:  ym.Year,
		Month: ym.Month,

		Teacher:   t,
		Timeslots: sorted,

		DailyLectureMinutes:   totals.lectureMinutes,
		DailyOfficeMinutes:    totals.officeMinutes,
		DailyLateNightMinutes: totals.lateNightMinutes,
		DailyOvertimeMinutes:  totals.overtimeMinutes,
		DailyAttended:         totals.attended,

		MonthlyGrossSalary:       gross.IntPart(),
		MonthlyTaxAmount:         taxAmount.Truncate(0).IntPart(),
		MonthlyTransportationFee: transportation.IntPart(),

		ExtraPayment: extraPayment,
		Remark:       remark,
	}, nil
}

package attendance

import (
	"fmt"

	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
)

// UpdateAttendanceRequest replaces a record's timeslot list, extra payment
// and remark; everything derived is recomputed from scratch.
type UpdateAttendanceRequest struct {
	Timeslots    []Timeslot `json:"timeslots"`
	ExtraPayment int64      `json:"extra_payment"`
	Remark       string     `json:"remark"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, ts := range r.Timeslots {
		if err := ts.Validate(); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("timeslots[%d]", i),
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IngestGridRequest carries a posted schedule grid: an ordered list of
// 3-row blocks already decoded into typed cells.
type IngestGridRequest struct {
	Blocks []Block `json:"content"`
}

func (r *IngestGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Blocks) == 0 {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyAttendanceResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Teacher   teacher.TeacherResponse `json:"teacher"`
	Timeslots []Timeslot              `json:"timeslots"`

	DailyLectureMinutes   [MaxDays]int  `json:"daily_lecture_minutes"`
	DailyOfficeMinutes    [MaxDays]int  `json:"daily_office_minutes"`
	DailyLateNightMinutes [MaxDays]int  `json:"daily_latenight_minutes"`
	DailyOvertimeMinutes  [MaxDays]int  `json:"daily_overtime_minutes"`
	DailyAttended         [MaxDays]bool `json:"daily_attended"`

	MonthlyGrossSalary       int64 `json:"monthly_gross_salary"`
	MonthlyTaxAmount         int64 `json:"monthly_tax_amount"`
	MonthlyTransportationFee int64 `json:"monthly_transportation_fee"`

	ExtraPayment int64  `json:"extra_payment"`
	Remark       string `json:"remark"`
}

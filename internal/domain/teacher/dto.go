package teacher

import (
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTeacherRequest struct {
	SchoolID    string `json:"school_id"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`

	LectureHourlyPay        decimal.Decimal `json:"lecture_hourly_pay"`
	OfficeHourlyPay         decimal.Decimal `json:"office_hourly_pay"`
	TransportationFeePerDay decimal.Decimal `json:"transportation_fee_per_day"`
	FixedMonthlyAddition    decimal.Decimal `json:"fixed_monthly_addition"`
}

func (r *CreateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SchoolID) {
		errs = append(errs, validator.ValidationError{Field: "school_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{Field: "display_name", Message: "is required"})
	}
	if r.LectureHourlyPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "lecture_hourly_pay", Message: "must be non-negative"})
	}
	if r.OfficeHourlyPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "office_hourly_pay", Message: "must be non-negative"})
	}
	if r.TransportationFeePerDay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transportation_fee_per_day", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTeacherRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	GivenName   *string `json:"given_name,omitempty"`
	FamilyName  *string `json:"family_name,omitempty"`

	LectureHourlyPay        *decimal.Decimal `json:"lecture_hourly_pay,omitempty"`
	OfficeHourlyPay         *decimal.Decimal `json:"office_hourly_pay,omitempty"`
	TransportationFeePerDay *decimal.Decimal `json:"transportation_fee_per_day,omitempty"`
	FixedMonthlyAddition    *decimal.Decimal `json:"fixed_monthly_addition,omitempty"`
}

func (r *UpdateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DisplayName != nil && validator.IsEmpty(*r.DisplayName) {
		errs = append(errs, validator.ValidationError{Field: "display_name", Message: "must not be blank"})
	}
	if r.LectureHourlyPay != nil && r.LectureHourlyPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "lecture_hourly_pay", Message: "must be non-negative"})
	}
	if r.OfficeHourlyPay != nil && r.OfficeHourlyPay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "office_hourly_pay", Message: "must be non-negative"})
	}
	if r.TransportationFeePerDay != nil && r.TransportationFeePerDay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transportation_fee_per_day", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeacherResponse struct {
	ID          string `json:"id"`
	SchoolID    string `json:"school_id"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`

	LectureHourlyPay        decimal.Decimal `json:"lecture_hourly_pay"`
	OfficeHourlyPay         decimal.Decimal `json:"office_hourly_pay"`
	TransportationFeePerDay decimal.Decimal `json:"transportation_fee_per_day"`
	FixedMonthlyAddition    decimal.Decimal `json:"fixed_monthly_addition"`
}

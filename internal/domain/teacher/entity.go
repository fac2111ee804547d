package teacher

import (
	"github.com/shopspring/decimal"
)

// Teacher is the pay profile snapshot used by payroll calculation. The
// calculation core never mutates it; attendance records embed a copy taken
// at computation time.
type Teacher struct {
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

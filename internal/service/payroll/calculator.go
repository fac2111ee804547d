package payroll

import (
	"time"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const (
	// PrepareMinutes is the fixed preparation buffer applied around
	// lectures, paid at the office rate.
	PrepareMinutes = 10

	// overtimeThresholdMinutes is the 8-hour daily threshold beyond which
	// the overtime allowance applies.
	overtimeThresholdMinutes = 8 * 60
)

var (
	minutesPerHour = decimal.NewFromInt(60)

	// allowanceRate is the 25% premium applied to late-night and overtime
	// minutes at the office rate.
	allowanceRate = decimal.RequireFromString("0.25")
)

// dayEntries is one day-bucket of a teacher's month, split by slot type.
type dayEntries struct {
	lectures []attendance.Timeslot
	office   []attendance.Timeslot
}

func (d dayEntries) count() int { return len(d.lectures) + len(d.office) }

// bucketByDay partitions a timeslot list into the 31 day-buckets. Days with
// no entries stay empty.
func bucketByDay(timeslots []attendance.Timeslot) [attendance.MaxDays]dayEntries {
	var buckets [attendance.MaxDays]dayEntries
	for _, ts := range timeslots {
		i := ts.Day - 1
		if ts.TimeslotType == attendance.TimeslotOfficeWork {
			buckets[i].office = append(buckets[i].office, ts)
		} else {
			buckets[i].lectures = append(buckets[i].lectures, ts)
		}
	}
	return buckets
}

// dailyTotals carries the per-day minute arrays plus the daily salary used
// only for monthly summation; the salary array is never persisted.
type dailyTotals struct {
	lectureMinutes   [attendance.MaxDays]int
	officeMinutes    [attendance.MaxDays]int
	lateNightMinutes [attendance.MaxDays]int
	overtimeMinutes  [attendance.MaxDays]int
	attended         [attendance.MaxDays]bool
	salary           [attendance.MaxDays]decimal.Decimal
}

// calculateDailyTotals runs the allowance rules over every day-bucket.
//
// Office minutes gain a preparation buffer of (L+1)+(L-1) prepare units when
// the day has L > 0 lectures. The late-night allowance pays 25% of the
// office rate for minutes worked past the boundary on the following calendar
// day (10:00 when the day's work ends before noon, 22:00 otherwise); the
// overtime allowance pays the same premium for minutes beyond 8 hours.
func calculateDailyTotals(ym attendance.YearMonth, buckets [attendance.MaxDays]dayEntries, lectureRate, officeRate decimal.Decimal) dailyTotals {
	var totals dailyTotals

	for i := range buckets {
		totals.salary[i] = decimal.Zero

		bucket := buckets[i]
		if bucket.count() == 0 {
			continue
		}
		day := i + 1

		lectureMin := 0
		for _, ts := range bucket.lectures {
			lectureMin += ts.Minutes()
		}

		officeMin := 0
		for _, ts := range bucket.office {
			officeMin += ts.Minutes()
		}
		if l := len(bucket.lectures); l > 0 {
			officeMin += (l+1)*PrepareMinutes + (l-1)*PrepareMinutes
		}

		base := decimal.NewFromInt(int64(lectureMin)).Div(minutesPerHour).Mul(lectureRate).
			Add(decimal.NewFromInt(int64(officeMin)).Div(minutesPerHour).Mul(officeRate))

		lateNightMin := lateNightMinutes(ym, day, bucket)

		overtimeMin := lectureMin + officeMin - overtimeThresholdMinutes
		if overtimeMin < 0 {
			overtimeMin = 0
		}

		premium := allowanceRate.Mul(officeRate)
		salary := base.
			Add(premium.Mul(decimal.NewFromInt(int64(lateNightMin)).Div(minutesPerHour))).
			Add(premium.Mul(decimal.NewFromInt(int64(overtimeMin)).Div(minutesPerHour)))

		totals.lectureMinutes[i] = lectureMin
		totals.officeMinutes[i] = officeMin
		totals.lateNightMinutes[i] = lateNightMin
		totals.overtimeMinutes[i] = overtimeMin
		totals.attended[i] = true
		totals.salary[i] = salary.Truncate(0)
	}

	return totals
}

// lateNightMinutes computes minutes worked past the late-night boundary.
// The day's work ends at the latest slot end plus the post-lecture prepare
// buffer; the boundary sits on the calendar day after that.
func lateNightMinutes(ym attendance.YearMonth, day int, bucket dayEntries) int {
	var last attendance.TimeOfDay
	for _, ts := range bucket.lectures {
		if last.Before(ts.EndTime) {
			last = ts.EndTime
		}
	}
	for _, ts := range bucket.office {
		if last.Before(ts.EndTime) {
			last = ts.EndTime
		}
	}

	workEnd := last.At(ym.Year, time.Month(ym.Month), day).Add(PrepareMinutes * time.Minute)

	boundaryHour := 22
	if workEnd.Hour() < 12 {
		boundaryHour = 10
	}
	boundary := time.Date(workEnd.Year(), workEnd.Month(), workEnd.Day()+1, boundaryHour, 0, 0, 0, time.UTC)

	minutes := int(workEnd.Sub(boundary).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

package attendance

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
)

// MaxDays is the fixed length of every daily array. Entries beyond the
// month's real length stay zero.
const MaxDays = 31

// TimeOfDay is a validated wall-clock time. The zero value is midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour must be in range 0-23, got %d", ErrInvalidTime, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute must be in range 0-59, got %d", ErrInvalidTime, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses "H:MM" or "HH:MM". Input must already be ASCII;
// callers normalize full-width spreadsheet text first.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not a HH:MM time", ErrInvalidTime, s)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int                { return t.minutes / 60 }
func (t TimeOfDay) Minute() int              { return t.minutes % 60 }
func (t TimeOfDay) MinutesFromMidnight() int { return t.minutes }

// Sub returns t minus u in minutes.
func (t TimeOfDay) Sub(u TimeOfDay) int { return t.minutes - u.minutes }

func (t TimeOfDay) Before(u TimeOfDay) bool { return t.minutes < u.minutes }

// Add returns the time shifted forward by the given minutes, failing if the
// result leaves the day.
func (t TimeOfDay) Add(minutes int) (TimeOfDay, error) {
	m := t.minutes + minutes
	if m < 0 || m >= 24*60 {
		return TimeOfDay{}, fmt.Errorf("%w: %s%+d minutes leaves the day", ErrInvalidTime, t, minutes)
	}
	return TimeOfDay{minutes: m}, nil
}

// At anchors the time of day onto a concrete calendar date.
func (t TimeOfDay) At(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeslotType enum
type TimeslotType string

const (
	TimeslotLecture    TimeslotType = "lecture"
	TimeslotOfficeWork TimeslotType = "office_work"
	TimeslotOther      TimeslotType = "other"
)

func (tt TimeslotType) IsValid() bool {
	switch tt {
	case TimeslotLecture, TimeslotOfficeWork, TimeslotOther:
		return true
	}
	return false
}

// Timeslot is one scheduled unit of a teacher's day: a lecture period or an
// office-work period.
type Timeslot struct {
	Day            int          `json:"day"`
	StartTime      TimeOfDay    `json:"start_time"`
	EndTime        TimeOfDay    `json:"end_time"`
	TimeslotNumber int          `json:"timeslot_number"`
	TimeslotType   TimeslotType `json:"timeslot_type"`
}

// NewTimeslot builds a Timeslot, rejecting any combination that violates the
// domain invariants: lectures carry a canonical period number >= 1, office
// work always carries 0, and the end never precedes the start.
func NewTimeslot(day int, start, end TimeOfDay, number int, tt TimeslotType) (Timeslot, error) {
	ts := Timeslot{
		Day:            day,
		StartTime:      start,
		EndTime:        end,
		TimeslotNumber: number,
		TimeslotType:   tt,
	}
	if err := ts.Validate(); err != nil {
		return Timeslot{}, err
	}
	return ts, nil
}

func (ts Timeslot) Validate() error {
	if ts.Day < 1 || ts.Day > MaxDays {
		return fmt.Errorf("%w: day must be in range 1-%d, got %d", ErrInvalidDay, MaxDays, ts.Day)
	}
	if !ts.TimeslotType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTimeslotType, ts.TimeslotType)
	}
	if ts.TimeslotType == TimeslotLecture && ts.TimeslotNumber < 1 {
		return fmt.Errorf("%w: lecture requires timeslot_number >= 1, got %d", ErrInvalidTimeslotNumber, ts.TimeslotNumber)
	}
	if ts.TimeslotType == TimeslotOfficeWork && ts.TimeslotNumber != 0 {
		return fmt.Errorf("%w: office work requires timeslot_number == 0, got %d", ErrInvalidTimeslotNumber, ts.TimeslotNumber)
	}
	if ts.EndTime.Before(ts.StartTime) {
		return fmt.Errorf("%w: %s ends before it starts (%s)", ErrEndBeforeStart, ts.EndTime, ts.StartTime)
	}
	return nil
}

// Minutes returns the slot duration.
func (ts Timeslot) Minutes() int {
	return ts.EndTime.Sub(ts.StartTime)
}

// SortTimeslots orders a list by day, then start time, then period number.
// Monthly attendance keeps its timeslot list in this order so recomputation
// from a stored record reproduces it byte for byte.
func SortTimeslots(list []Timeslot) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Day != list[j].Day {
			return list[i].Day < list[j].Day
		}
		if list[i].StartTime != list[j].StartTime {
			return list[i].StartTime.Before(list[j].StartTime)
		}
		return list[i].TimeslotNumber < list[j].TimeslotNumber
	})
}

// YearMonth is a validated target period. Month 0 means the whole year.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func NewYearMonth(year, month int) (YearMonth, error) {
	if year < 1000 || year > 9999 {
		return YearMonth{}, fmt.Errorf("%w: year must be in range 1000-9999, got %d", ErrInvalidPeriod, year)
	}
	if month < 0 || month > 12 {
		return YearMonth{}, fmt.Errorf("%w: month must be in range 1-12, got %d", ErrInvalidPeriod, month)
	}
	return YearMonth{Year: year, Month: month}, nil
}

// Text renders "2023" for a whole year or "2023-07" for a single month.
func (ym YearMonth) Text() string {
	if ym.Month == 0 {
		return fmt.Sprintf("%d", ym.Year)
	}
	return fmt.Sprintf("%d-%02d", ym.Year, ym.Month)
}

// RecordType is the store key prefix for this period's attendance records.
func (ym YearMonth) RecordType() string {
	return "attendance#" + ym.Text()
}

// MonthlyAttendance is the fully computed payroll record for one teacher and
// month. It is produced wholesale by the salary composer and replaced, never
// patched: an update is a recomputation from a new timeslot list.
type MonthlyAttendance struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	Teacher   teacher.Teacher `json:"teacher"`
	Timeslots []Timeslot      `json:"timeslots"`

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

// RecordType keys this record in the store together with the teacher id.
func (ma MonthlyAttendance) RecordType() string {
	return YearMonth{Year: ma.Year, Month: ma.Month}.RecordType()
}

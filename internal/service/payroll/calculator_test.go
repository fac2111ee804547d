package payroll

import (
	"testing"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) attendance.TimeOfDay {
	t.Helper()
	tod, err := attendance.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func lecture(t *testing.T, day int, start, end string, number int) attendance.Timeslot {
	t.Helper()
	ts, err := attendance.NewTimeslot(day, mustTime(t, start), mustTime(t, end), number, attendance.TimeslotLecture)
	require.NoError(t, err)
	return ts
}

func officeWork(t *testing.T, day int, start, end string) attendance.Timeslot {
	t.Helper()
	ts, err := attendance.NewTimeslot(day, mustTime(t, start), mustTime(t, end), 0, attendance.TimeslotOfficeWork)
	require.NoError(t, err)
	return ts
}

func july2023(t *testing.T) attendance.YearMonth {
	t.Helper()
	ym, err := attendance.NewYearMonth(2023, 7)
	require.NoError(t, err)
	return ym
}

func TestCalculateDailyTotalsSingleLecture(t *testing.T) {
	slots := []attendance.Timeslot{lecture(t, 5, "14:00", "15:20", 1)}

	totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
		decimal.NewFromInt(2000), decimal.NewFromInt(1500))

	assert.Equal(t, 80, totals.lectureMinutes[4])
	// One lecture adds the (1+1)*10 + (1-1)*10 preparation buffer.
	assert.Equal(t, 20, totals.officeMinutes[4])
	assert.Equal(t, 0, totals.lateNightMinutes[4])
	assert.Equal(t, 0, totals.overtimeMinutes[4])
	assert.True(t, totals.attended[4])

	// 80/60*2000 + 20/60*1500 = 2666.67 + 500 = 3166.67, truncated.
	assert.True(t, totals.salary[4].Equal(decimal.NewFromInt(3166)),
		"day 5 salary = %s", totals.salary[4])
}

func TestCalculateDailyTotalsPrepareBuffer(t *testing.T) {
	tests := []struct {
		name       string
		lectures   int
		wantOffice int
	}{
		{"one lecture", 1, 20},
		{"two lectures", 2, 40},
		{"three lectures", 3, 60},
		{"five lectures", 5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := [][2]string{
				{"14:00", "15:20"}, {"15:30", "16:50"}, {"17:00", "18:20"},
				{"18:30", "19:50"}, {"20:00", "21:20"},
			}
			var slots []attendance.Timeslot
			for i := 0; i < tt.lectures; i++ {
				slots = append(slots, lecture(t, 10, periods[i][0], periods[i][1], i+1))
			}

			totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
				decimal.NewFromInt(2000), decimal.NewFromInt(1500))

			assert.Equal(t, tt.wantOffice, totals.officeMinutes[9])
		})
	}
}

func TestCalculateDailyTotalsOfficeOnlyDay(t *testing.T) {
	slots := []attendance.Timeslot{officeWork(t, 3, "14:00", "16:00")}

	totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
		decimal.NewFromInt(2000), decimal.NewFromInt(1500))

	assert.Equal(t, 0, totals.lectureMinutes[2])
	// No lectures, so no preparation buffer.
	assert.Equal(t, 120, totals.officeMinutes[2])
	assert.True(t, totals.attended[2])
	assert.True(t, totals.salary[2].Equal(decimal.NewFromInt(3000)))
}

func TestCalculateDailyTotalsOvertime(t *testing.T) {
	// 5 lectures (400 min) plus 100 min of prep buffer plus 100 min of
	// office work crosses the 8 hour threshold by 120 minutes.
	slots := []attendance.Timeslot{
		lecture(t, 7, "14:00", "15:20", 1),
		lecture(t, 7, "15:30", "16:50", 2),
		lecture(t, 7, "17:00", "18:20", 3),
		lecture(t, 7, "18:30", "19:50", 4),
		lecture(t, 7, "20:00", "21:20", 5),
		officeWork(t, 7, "12:00", "13:40"),
	}

	totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
		decimal.NewFromInt(2000), decimal.NewFromInt(1500))

	assert.Equal(t, 400, totals.lectureMinutes[6])
	assert.Equal(t, 200, totals.officeMinutes[6])
	assert.Equal(t, 120, totals.overtimeMinutes[6])
}

func TestCalculateDailyTotalsUnderThresholdNoOvertime(t *testing.T) {
	slots := []attendance.Timeslot{lecture(t, 7, "14:00", "15:20", 1)}

	totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
		decimal.NewFromInt(2000), decimal.NewFromInt(1500))

	assert.Equal(t, 0, totals.overtimeMinutes[6])
}

func TestLateNightMinutes(t *testing.T) {
	// Work ending 23:10 (plus the 10 minute buffer, 23:20) sits before
	// the next day's 22:00 boundary.
	t.Run("evening end stays below boundary", func(t *testing.T) {
		slots := []attendance.Timeslot{lecture(t, 12, "21:50", "23:10", 5)}

		totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
			decimal.NewFromInt(2000), decimal.NewFromInt(1500))

		assert.Equal(t, 0, totals.lateNightMinutes[11])
	})

	// An end just before midnight pushes work end past it; the boundary
	// then sits on the calendar day after the rollover.
	t.Run("end past midnight", func(t *testing.T) {
		slots := []attendance.Timeslot{officeWork(t, 12, "22:00", "23:55")}

		totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
			decimal.NewFromInt(2000), decimal.NewFromInt(1500))

		assert.Equal(t, 0, totals.lateNightMinutes[11])
	})
}

func TestCalculateDailyTotalsEmptyDaysUntouched(t *testing.T) {
	slots := []attendance.Timeslot{lecture(t, 5, "14:00", "15:20", 1)}

	totals := calculateDailyTotals(july2023(t), bucketByDay(slots),
		decimal.NewFromInt(2000), decimal.NewFromInt(1500))

	for i := 0; i < attendance.MaxDays; i++ {
		if i == 4 {
			continue
		}
		assert.False(t, totals.attended[i], "day %d", i+1)
		assert.Equal(t, 0, totals.lectureMinutes[i])
		assert.Equal(t, 0, totals.officeMinutes[i])
		assert.True(t, totals.salary[i].IsZero())
	}
}

func TestBucketByDay(t *testing.T) {
	slots := []attendance.Timeslot{
		lecture(t, 5, "14:00", "15:20", 1),
		officeWork(t, 5, "15:30", "16:00"),
		lecture(t, 20, "17:00", "18:20", 3),
	}

	buckets := bucketByDay(slots)

	assert.Len(t, buckets[4].lectures, 1)
	assert.Len(t, buckets[4].office, 1)
	assert.Len(t, buckets[19].lectures, 1)
	assert.Equal(t, 0, buckets[0].count())
}

// Minutes are conserved through the day buckets: summing the daily lecture
// and office arrays and subtracting each day's preparation buffer gives back
// the total duration of the input timeslots.
func TestCalculateDailyTotalsConservesMinutes(t *testing.T) {
	slots := []attendance.Timeslot{
		lecture(t, 3, "14:00", "15:20", 1),
		lecture(t, 3, "15:30", "16:50", 2),
		officeWork(t, 3, "17:00", "18:30"),
		lecture(t, 10, "17:00", "18:20", 3),
		officeWork(t, 12, "14:00", "16:00"),
		lecture(t, 21, "14:00", "15:20", 1),
		lecture(t, 21, "15:30", "16:50", 2),
		lecture(t, 21, "17:00", "18:20", 3),
		lecture(t, 21, "18:30", "19:50", 4),
		lecture(t, 21, "20:00", "21:20", 5),
		officeWork(t, 21, "13:00", "14:00"),
		officeWork(t, 31, "14:00", "14:00"),
	}

	want := 0
	for _, ts := range slots {
		want += ts.Minutes()
	}

	buckets := bucketByDay(slots)
	totals := calculateDailyTotals(july2023(t), buckets,
		decimal.NewFromInt(2000), decimal.NewFromInt(1500))

	got := 0
	for i := 0; i < attendance.MaxDays; i++ {
		got += totals.lectureMinutes[i] + totals.officeMinutes[i]
		if l := len(buckets[i].lectures); l > 0 {
			got -= (l+1)*PrepareMinutes + (l-1)*PrepareMinutes
		}
	}

	assert.Equal(t, want, got)
}

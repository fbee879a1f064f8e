package availability

import (
	"testing"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allDays(entry entity.DayEntry) *entity.WeeklySchedule {
	return &entity.WeeklySchedule{
		Monday:    entry,
		Tuesday:   entry,
		Wednesday: entry,
		Thursday:  entry,
		Friday:    entry,
		Saturday:  entry,
		Sunday:    entry,
	}
}

// at builds an instant on a fixed Wednesday at the given local wall clock.
func at(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-06-11 "+clock)
	if err != nil {
		panic(err)
	}

	return t
}

func TestEvaluate_ManualClosedWinsOverAnySchedule(t *testing.T) {
	schedules := []*entity.WeeklySchedule{
		nil,
		allDays(entity.DayEntry{Enabled: true, Open: "00:00", Close: "23:59"}),
		allDays(entity.DayEntry{Enabled: false, Open: "09:00", Close: "18:00"}),
		allDays(entity.DayEntry{Enabled: true, Open: "22:00", Close: "02:00"}),
	}

	for _, schedule := range schedules {
		for _, clock := range []string{"00:00", "03:30", "12:00", "23:59"} {
			result := Evaluate(false, schedule, at(clock))
			assert.False(t, result.IsOpen)
			assert.Equal(t, ReasonManualClosed, result.Reason)
		}
	}
}

func TestEvaluate_NoScheduleMeansManualToggleDecides(t *testing.T) {
	result := Evaluate(true, nil, at("04:00"))
	assert.True(t, result.IsOpen)
	assert.Equal(t, ReasonOpen, result.Reason)
	assert.Nil(t, result.ActiveDay)
}

func TestEvaluate_RegularWindowIsHalfOpen(t *testing.T) {
	schedule := allDays(entity.DayEntry{Enabled: true, Open: "08:00", Close: "18:00"})

	cases := []struct {
		clock string
		open  bool
	}{
		{"07:59", false},
		{"08:00", true},
		{"12:30", true},
		{"17:59", true},
		{"18:00", false},
	}
	for _, tc := range cases {
		result := Evaluate(true, schedule, at(tc.clock))
		assert.Equal(t, tc.open, result.IsOpen, "clock %s", tc.clock)
		if !tc.open {
			assert.Equal(t, ReasonOutsideHours, result.Reason, "clock %s", tc.clock)
		}
	}
}

func TestEvaluate_OvernightWindowWrapsMidnight(t *testing.T) {
	schedule := allDays(entity.DayEntry{Enabled: true, Open: "22:00", Close: "02:00"})

	for _, clock := range []string{"23:30", "01:00", "22:00"} {
		result := Evaluate(true, schedule, at(clock))
		assert.True(t, result.IsOpen, "clock %s", clock)
	}

	for _, clock := range []string{"10:00", "02:00", "21:59"} {
		result := Evaluate(true, schedule, at(clock))
		assert.False(t, result.IsOpen, "clock %s", clock)
		assert.Equal(t, ReasonOutsideHours, result.Reason, "clock %s", clock)
	}
}

func TestEvaluate_BeforeOpeningNamesTodaysOpenTime(t *testing.T) {
	schedule := allDays(entity.DayEntry{Enabled: true, Open: "08:00", Close: "18:00"})

	result := Evaluate(true, schedule, at("06:15"))
	require.False(t, result.IsOpen)
	assert.Equal(t, ReasonOutsideHours, result.Reason)
	assert.Equal(t, "opens today at 08:00", result.NextOpen)
}

func TestEvaluate_DisabledDayScansForwardToTomorrow(t *testing.T) {
	schedule := allDays(entity.DayEntry{Enabled: true, Open: "09:00", Close: "17:00"})
	schedule.Wednesday = entity.DayEntry{Enabled: false, Open: "09:00", Close: "17:00"}

	result := Evaluate(true, schedule, at("12:00"))
	require.False(t, result.IsOpen)
	assert.Equal(t, ReasonDayClosed, result.Reason)
	assert.Equal(t, "opens tomorrow at 09:00", result.NextOpen)
}

func TestEvaluate_DisabledDaysScanNamesWeekday(t *testing.T) {
	// Only Saturday is enabled; evaluated on Wednesday.
	schedule := allDays(entity.DayEntry{Enabled: false})
	schedule.Saturday = entity.DayEntry{Enabled: true, Open: "10:00", Close: "16:00"}

	result := Evaluate(true, schedule, at("12:00"))
	require.False(t, result.IsOpen)
	assert.Equal(t, ReasonDayClosed, result.Reason)
	assert.Equal(t, "opens on Saturday at 10:00", result.NextOpen)
}

func TestEvaluate_AfterClosingFallsThroughToNextEnabledDay(t *testing.T) {
	schedule := allDays(entity.DayEntry{Enabled: true, Open: "08:00", Close: "18:00"})

	result := Evaluate(true, schedule, at("20:00"))
	require.False(t, result.IsOpen)
	assert.Equal(t, ReasonOutsideHours, result.Reason)
	assert.Equal(t, "opens tomorrow at 08:00", result.NextOpen)
}

func TestEvaluate_NoEnabledDayYieldsEmptyNextOpen(t *testing.T) {
	schedule := allDays(entity.DayEntry{Enabled: false})

	result := Evaluate(true, schedule, at("12:00"))
	require.False(t, result.IsOpen)
	assert.Equal(t, ReasonDayClosed, result.Reason)
	assert.Empty(t, result.NextOpen)
}

func TestNormalize_FillsMissingTimesPerDay(t *testing.T) {
	schedule := &entity.WeeklySchedule{
		Monday: entity.DayEntry{Enabled: true, Open: "07:30"},
	}
	schedule.Normalize()

	assert.Equal(t, "07:30", schedule.Monday.Open)
	assert.Equal(t, entity.DefaultCloseTime, schedule.Monday.Close)
	assert.Equal(t, entity.DefaultOpenTime, schedule.Tuesday.Open)
	assert.Equal(t, entity.DefaultCloseTime, schedule.Tuesday.Close)
}

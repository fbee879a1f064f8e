package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeklySchedule_Normalize_FillsMissingTimes(t *testing.T) {
	schedule := &WeeklySchedule{
		Monday:  DayEntry{Enabled: true, Open: "08:30"},
		Tuesday: DayEntry{Enabled: true, Close: "22:00"},
	}

	schedule.Normalize()

	assert.Equal(t, "08:30", schedule.Monday.Open)
	assert.Equal(t, DefaultCloseTime, schedule.Monday.Close)
	assert.Equal(t, DefaultOpenTime, schedule.Tuesday.Open)
	assert.Equal(t, "22:00", schedule.Tuesday.Close)
	assert.Equal(t, DefaultOpenTime, schedule.Sunday.Open)
	assert.Equal(t, DefaultCloseTime, schedule.Sunday.Close)
}

func TestWeeklySchedule_Entry(t *testing.T) {
	schedule := &WeeklySchedule{
		Wednesday: DayEntry{Enabled: true, Open: "10:00", Close: "20:00"},
	}

	assert.Equal(t, schedule.Wednesday, schedule.Entry(time.Wednesday))
	assert.Equal(t, schedule.Sunday, schedule.Entry(time.Sunday))
}

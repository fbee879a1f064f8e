// Package entity contains the core business objects of the project.
package entity

import "time"

// Default day entry applied when a schedule day is absent or partially populated.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// DayEntry describes one day of a store's weekly schedule. Open and Close are
// zero-padded HH:MM strings in the store's local civil time; lexical
// comparison is valid because the format is fixed-width.
type DayEntry struct {
	Enabled bool   `json:"enabled"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

// WeeklySchedule holds one entry per weekday, Monday through Sunday.
type WeeklySchedule struct {
	Monday    DayEntry `json:"monday"`
	Tuesday   DayEntry `json:"tuesday"`
	Wednesday DayEntry `json:"wednesday"`
	Thursday  DayEntry `json:"thursday"`
	Friday    DayEntry `json:"friday"`
	Saturday  DayEntry `json:"saturday"`
	Sunday    DayEntry `json:"sunday"`
}

// Entry returns the day entry for the given weekday.
func (s *WeeklySchedule) Entry(day time.Weekday) DayEntry {
	switch day {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	default:
		return s.Sunday
	}
}

// Normalize fills missing open/close times with defaults, merging per day
// rather than rejecting a partially populated schedule.
func (s *WeeklySchedule) Normalize() {
	for _, day := range []*DayEntry{
		&s.Monday, &s.Tuesday, &s.Wednesday, &s.Thursday,
		&s.Friday, &s.Saturday, &s.Sunday,
	} {
		if day.Open == "" {
			day.Open = DefaultOpenTime
		}
		if day.Close == "" {
			day.Close = DefaultCloseTime
		}
	}
}

// Package availability decides whether a store currently accepts orders.
// The calculation is pure: given the manual toggle, the weekly schedule and
// an instant, it is reproducible bit-for-bit.
package availability

import (
	"fmt"
	"time"

	"dispatch/internal/domain/entity"
)

// Reason explains why a store is open or closed.
type Reason string

const (
	// ReasonOpen means the store accepts orders right now.
	ReasonOpen Reason = "open"
	// ReasonManualClosed means the owner toggled the store closed.
	ReasonManualClosed Reason = "manual_closed"
	// ReasonDayClosed means today's schedule entry is disabled.
	ReasonDayClosed Reason = "day_closed"
	// ReasonOutsideHours means today is enabled but now falls outside the window.
	ReasonOutsideHours Reason = "outside_hours"
)

// Result is the outcome of an availability evaluation.
type Result struct {
	IsOpen    bool
	Reason    Reason
	ActiveDay *entity.DayEntry // Today's schedule entry, nil when no schedule applies.
	NextOpen  string           // Human-readable next opening, empty when open.
}

// Evaluate applies the availability rules in order: manual toggle, schedule
// presence, day enablement, then the [open, close) time window. Overnight
// windows (close lexically before open) wrap past midnight, so membership
// becomes now >= open OR now < close. Time-of-day comparison uses zero-padded
// HH:MM strings, which order correctly under lexical comparison.
func Evaluate(manualOpen bool, schedule *entity.WeeklySchedule, now time.Time) Result {
	if !manualOpen {
		return Result{IsOpen: false, Reason: ReasonManualClosed}
	}

	// The manual toggle is authoritative when no schedule exists.
	if schedule == nil {
		return Result{IsOpen: true, Reason: ReasonOpen}
	}

	day := schedule.Entry(now.Weekday())
	if !day.Enabled {
		return Result{
			IsOpen:    false,
			Reason:    ReasonDayClosed,
			ActiveDay: &day,
			NextOpen:  nextOpenDescription(schedule, now),
		}
	}

	clock := now.Format("15:04")
	if inWindow(clock, day.Open, day.Close) {
		return Result{IsOpen: true, Reason: ReasonOpen, ActiveDay: &day}
	}

	next := nextOpenDescription(schedule, now)
	if clock < day.Open {
		next = fmt.Sprintf("opens today at %s", day.Open)
	}

	return Result{
		IsOpen:    false,
		Reason:    ReasonOutsideHours,
		ActiveDay: &day,
		NextOpen:  next,
	}
}

// inWindow reports membership of clock in the half-open window [open, close).
func inWindow(clock, open, close string) bool {
	if close < open {
		// Overnight window wrapping past midnight.
		return clock >= open || clock < close
	}

	return clock >= open && clock < close
}

// nextOpenDescription scans forward up to six days for the next enabled entry.
func nextOpenDescription(schedule *entity.WeeklySchedule, now time.Time) string {
	for offset := 1; offset <= 6; offset++ {
		day := now.AddDate(0, 0, offset)
		entry := schedule.Entry(day.Weekday())
		if !entry.Enabled {
			continue
		}

		if offset == 1 {
			return fmt.Sprintf("opens tomorrow at %s", entry.Open)
		}

		return fmt.Sprintf("opens on %s at %s", day.Weekday(), entry.Open)
	}

	return ""
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a local store that receives orders and dispatches drivers.
type Store struct {
	ID         uuid.UUID       `json:"id"`          // The Global Unique Identifier (GUID) for the store.
	Name       string          `json:"name"`        // Display name of the store.
	ManualOpen bool            `json:"manual_open"` // Owner-controlled toggle; false closes the store regardless of schedule.
	Timezone   string          `json:"timezone"`    // IANA timezone name for schedule evaluation, e.g. "Asia/Taipei".
	Schedule   *WeeklySchedule `json:"schedule"`    // Weekly opening hours, nil when the store relies on the manual toggle only.
	CreatedAt  time.Time       `json:"created_at"`  // Timestamp of when the store was created.
	UpdatedAt  time.Time       `json:"updated_at"`  // Timestamp of the last modification.
}

// Location resolves the store's timezone, falling back to UTC when the name
// is empty or unknown.
func (s *Store) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// DriverOperationalStatus values reported by the driver app.
const (
	// DriverStatusAvailable means the driver is idle and accepting offers.
	DriverStatusAvailable = "available"
	// DriverStatusBusy means the driver is on an active delivery.
	DriverStatusBusy = "busy"
	// DriverStatusOffline means the driver is not working.
	DriverStatusOffline = "offline"
)

// DriverProfile is a read-only projection of a driver's dispatch-relevant
// state. It is queried at broadcast time and never written by this core.
type DriverProfile struct {
	ID        uuid.UUID `json:"id"`       // The Global Unique Identifier (GUID) for the driver.
	StoreID   uuid.UUID `json:"store_id"` // The store the driver belongs to.
	Name      string    `json:"name"`     // Display name shown in broadcast responses.
	IsActive  bool      `json:"is_active"`
	Available bool      `json:"available"`
	Status    string    `json:"status"` // Operational status reported by the driver app.
}

// Eligible reports whether the driver qualifies for a broadcast targeting the
// given store: store membership, active, available and status "available",
// evaluated in one pass.
func (d *DriverProfile) Eligible(storeID uuid.UUID) bool {
	return d.StoreID == storeID &&
		d.IsActive &&
		d.Available &&
		d.Status == DriverStatusAvailable
}

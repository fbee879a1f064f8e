// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// DriverRepository defines read access to the driver-availability projection.
// The dispatch core never writes driver state.
type DriverRepository interface {
	// FindEligibleDriversByStore retrieves the drivers that qualify for a
	// broadcast: store members that are active, available and whose
	// operational status is "available", filtered in one query.
	FindEligibleDriversByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.DriverProfile, error)
}

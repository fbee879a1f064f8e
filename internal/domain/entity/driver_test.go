package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDriverProfile_Eligible(t *testing.T) {
	storeID := uuid.New()

	base := DriverProfile{
		ID:        uuid.New(),
		StoreID:   storeID,
		IsActive:  true,
		Available: true,
		Status:    DriverStatusAvailable,
	}

	t.Run("all conditions met", func(t *testing.T) {
		driver := base
		assert.True(t, driver.Eligible(storeID))
	})

	t.Run("wrong store", func(t *testing.T) {
		driver := base
		assert.False(t, driver.Eligible(uuid.New()))
	})

	t.Run("inactive", func(t *testing.T) {
		driver := base
		driver.IsActive = false
		assert.False(t, driver.Eligible(storeID))
	})

	t.Run("unavailable", func(t *testing.T) {
		driver := base
		driver.Available = false
		assert.False(t, driver.Eligible(storeID))
	})

	t.Run("busy status", func(t *testing.T) {
		driver := base
		driver.Status = DriverStatusBusy
		assert.False(t, driver.Eligible(storeID))
	})

	t.Run("offline status", func(t *testing.T) {
		driver := base
		driver.Status = DriverStatusOffline
		assert.False(t, driver.Eligible(storeID))
	})
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverProfileModel is the GORM-specific struct for the 'driver_profiles'
// table. The dispatch core reads this projection and never writes it.
type DriverProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	Available bool      `gorm:"not null;default:false"`
	Status    string    `gorm:"type:varchar(16);not null;default:'offline'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverProfileModel) TableName() string {
	return "driver_profiles"
}

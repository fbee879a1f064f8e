package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table. The weekly
// schedule is embedded as JSONB; absent or partial schedules are normalized
// at the repository boundary.
type StoreModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	ManualOpen bool      `gorm:"not null;default:false"`
	Timezone   string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	Schedule   []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverNotificationModel is the GORM-specific struct for the
// 'driver_notifications' table.
type DriverNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferID   uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Tag       string    `gorm:"type:varchar(64)"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverNotificationModel) TableName() string {
	return "driver_notifications"
}

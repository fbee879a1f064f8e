package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           string     `gorm:"type:varchar(32);not null;default:'placed';index"`
	AssignedDriverID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the
// 'push_subscriptions' table. The endpoint is unique: re-subscribing with the
// same endpoint replaces the prior row.
type PushSubscriptionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role      string     `gorm:"type:varchar(16);not null"`
	StoreID   *uuid.UUID `gorm:"type:uuid;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Endpoint  string     `gorm:"type:text;not null;uniqueIndex"`
	P256dhKey string     `gorm:"type:text"`
	AuthKey   string     `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}

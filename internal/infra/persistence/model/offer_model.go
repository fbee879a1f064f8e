package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
// The (order_id, status) index backs the supersede and pending lookups.
type OfferModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_offers_order_status"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(16);not null;default:'pending';index:idx_offers_order_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

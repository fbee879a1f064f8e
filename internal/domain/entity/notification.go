// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DriverNotification represents a durable in-app notification written during
// a fan-out. It persists independently of push delivery so a driver who
// missed the push still sees the offer in the app.
type DriverNotification struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	DriverID  uuid.UUID  `json:"driver_id"`  // The driver this notification targets.
	OrderID   uuid.UUID  `json:"order_id"`   // The order the notification refers to.
	OfferID   uuid.UUID  `json:"offer_id"`   // The offer created for this driver.
	Title     string     `json:"title"`      // Notification title.
	Body      string     `json:"body"`       // Notification body text.
	Tag       string     `json:"tag"`        // Stable dedup tag, keyed by order ID.
	ReadAt    *time.Time `json:"read_at"`    // When the driver opened the notification, nil if unread.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the notification was written.
}

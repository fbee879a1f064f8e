// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription represents a push delivery target registered by a client.
// Web Push subscriptions carry an endpoint URL plus the two opaque encryption
// keys from the browser; FCM subscriptions store the device token in Endpoint
// and leave both keys empty. The endpoint is unique: re-subscribing with the
// same endpoint replaces the prior record.
type PushSubscription struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    uuid.UUID  `json:"user_id"`    // The user who owns this subscription.
	Role      Role       `json:"role"`       // Role of the owner (customer, driver, store_owner).
	StoreID   *uuid.UUID `json:"store_id"`   // Optional store scope for dashboard subscriptions.
	OrderID   *uuid.UUID `json:"order_id"`   // Optional order scope for order-tracking subscriptions.
	Endpoint  string     `json:"endpoint"`   // Push service endpoint URL, or FCM device token.
	P256dhKey string     `json:"p256dh_key"` // Client public key for Web Push payload encryption.
	AuthKey   string     `json:"auth_key"`   // Client auth secret for Web Push payload encryption.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the subscription was registered.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus represents the state of a dispatch offer.
type OfferStatus string

const (
	// OfferStatusPending indicates the offer can still be claimed by its driver.
	OfferStatusPending OfferStatus = "pending"
	// OfferStatusAccepted indicates the driver claimed the offer. At most one
	// offer per order may ever reach this state.
	OfferStatusAccepted OfferStatus = "accepted"
	// OfferStatusCancelled indicates the offer was superseded by a newer
	// broadcast or lost the race to a sibling offer.
	OfferStatusCancelled OfferStatus = "cancelled"
	// OfferStatusExpired indicates the offer outlived the configured claim window.
	OfferStatusExpired OfferStatus = "expired"
)

// String returns the string representation of the OfferStatus.
func (s OfferStatus) String() string {
	return string(s)
}

// IsValid checks if the OfferStatus is a valid value.
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusCancelled, OfferStatusExpired:
		return true
	default:
		return false
	}
}

// Offer represents one driver's opportunity to claim one order. A broadcast
// creates one pending offer per eligible driver; the acceptance resolver
// flips exactly one of them to accepted via an atomic conditional update.
type Offer struct {
	ID        uuid.UUID   `json:"id"`         // The Global Unique Identifier (GUID) for the offer.
	OrderID   uuid.UUID   `json:"order_id"`   // The order this offer belongs to.
	DriverID  uuid.UUID   `json:"driver_id"`  // The driver this offer targets.
	StoreID   uuid.UUID   `json:"store_id"`   // The store that owns the order.
	Status    OfferStatus `json:"status"`     // Current state of the offer.
	CreatedAt time.Time   `json:"created_at"` // Timestamp of when the offer was created.
	UpdatedAt time.Time   `json:"updated_at"` // Timestamp of the last modification.
}

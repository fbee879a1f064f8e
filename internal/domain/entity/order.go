// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPlaced indicates the order was created and not yet dispatched.
	OrderStatusPlaced OrderStatus = "placed"
	// OrderStatusAwaitingDriver indicates offers were broadcast and no driver has claimed yet.
	OrderStatusAwaitingDriver OrderStatus = "awaiting_driver"
	// OrderStatusAssigned indicates a driver claimed an offer for the order.
	OrderStatusAssigned OrderStatus = "assigned"
	// OrderStatusInDelivery indicates the assigned driver picked up the order.
	OrderStatusInDelivery OrderStatus = "in_delivery"
	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusAwaitingDriver, OrderStatusAssigned,
		OrderStatusInDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order represents a purchase placed at a store.
type Order struct {
	ID               uuid.UUID   `json:"id"`                 // The Global Unique Identifier (GUID) for the order.
	StoreID          uuid.UUID   `json:"store_id"`           // The ID of the store that owns the order.
	Status           OrderStatus `json:"status"`             // Current lifecycle status of the order.
	AssignedDriverID *uuid.UUID  `json:"assigned_driver_id"` // The driver who claimed the order, nil until accepted.
	CreatedAt        time.Time   `json:"created_at"`         // Timestamp of when the order was placed.
	UpdatedAt        time.Time   `json:"updated_at"`         // Timestamp of the last modification.
}

package service

import (
	"context"
)

// Dispatch event types relayed to connected dashboards and driver apps.
const (
	// EventOrderStatusChanged signals an order lifecycle transition.
	EventOrderStatusChanged = "order_status_changed"
	// EventOffersCreated signals a fresh broadcast of offers.
	EventOffersCreated = "offers_created"
)

// DispatchEvent describes a state change produced by the dispatch core. Every
// order-status and offer-status write is observable as one of these events,
// scoped by store, so clients react without polling.
type DispatchEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	Type        string   `json:"type"`
	StoreID     string   `json:"store_id"`
	OrderID     string   `json:"order_id"`
	OrderStatus string   `json:"order_status,omitempty"`
	OfferIDs    []string `json:"offer_ids,omitempty"`
	DriverIDs   []string `json:"driver_ids,omitempty"`
}

// EventPublisher defines the interface for publishing dispatch events to the
// realtime relay. Publishing is best effort relative to the authoritative
// state change: a failed publish never rolls back offers or order status.
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for relay to clients.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

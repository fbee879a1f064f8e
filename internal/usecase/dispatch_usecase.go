// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// BroadcastResult summarizes one broadcast: how many offers were created and
// how the notification fan-out went. Zero offers is a normal terminal outcome
// when no driver qualifies, not an error.
type BroadcastResult struct {
	OrderID       uuid.UUID   `json:"order_id"`
	OffersCreated int         `json:"offers_created"`
	OfferIDs      []uuid.UUID `json:"offer_ids"`
	DriverNames   []string    `json:"driver_names"`
	PushSent      int         `json:"push_sent"`
	PushTotal     int         `json:"push_total"`
}

// DispatchUsecase coordinates the order-to-driver offer broadcast.
type DispatchUsecase interface {
	// Broadcast gates on store availability, selects eligible drivers,
	// supersedes any stale pending offers for the order, creates one fresh
	// pending offer per driver, flips the order to awaiting_driver and
	// triggers the notification fan-out. The fan-out is best effort: its
	// failures never fail the broadcast.
	Broadcast(ctx context.Context, orderID, storeID uuid.UUID) (*BroadcastResult, error)

	// OrderOffers retrieves every offer ever broadcast for the order, newest
	// first, so a dashboard can follow the race across supersessions.
	OrderOffers(ctx context.Context, orderID uuid.UUID) ([]*entity.Offer, error)

	// ExpireStaleOffers marks pending offers older than ttl as expired and
	// returns how many were expired.
	ExpireStaleOffers(ctx context.Context, ttl time.Duration) (int64, error)
}

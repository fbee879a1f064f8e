// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferRepository defines the interface for offer-related database operations.
type OfferRepository interface {
	// CreateOffers persists one pending offer per eligible driver in a single batch.
	CreateOffers(ctx context.Context, offers []*entity.Offer) error

	// CancelPendingOffersByOrder supersedes a prior broadcast: every pending
	// offer for the order becomes cancelled. Returns the number of offers cancelled.
	CancelPendingOffersByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)

	// FindOffersByOrder retrieves all offers for an order, newest first.
	FindOffersByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Offer, error)

	// ExpireOffersOlderThan marks pending offers created before the cutoff as
	// expired. Returns the number of offers expired.
	ExpireOffersOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionInput carries a client's push registration. For Web Push the
// endpoint and both keys come from the browser's PushSubscription; for FCM
// the endpoint holds the device token and the keys stay empty.
type SubscriptionInput struct {
	UserID    uuid.UUID
	Role      entity.Role
	StoreID   *uuid.UUID
	OrderID   *uuid.UUID
	Endpoint  string
	P256dhKey string
	AuthKey   string
}

// SubscriptionUsecase manages push subscription registration.
type SubscriptionUsecase interface {
	// RegisterSubscription stores a subscription, replacing any prior record
	// with the same endpoint.
	RegisterSubscription(ctx context.Context, input *SubscriptionInput) (*entity.PushSubscription, error)

	// RemoveSubscription deletes a subscription by its endpoint.
	RemoveSubscription(ctx context.Context, endpoint string) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for push subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a push subscription is not found.
	ErrSubscriptionNotFound = errors.New("push subscription not found")
)

// PushSubscriptionRepository defines the interface for push subscription
// database operations. The endpoint is the natural key: upserting with an
// existing endpoint replaces the prior record.
type PushSubscriptionRepository interface {
	// UpsertSubscription creates a subscription or replaces the record with
	// the same endpoint.
	UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// DeleteSubscriptionByEndpoint removes a subscription by its endpoint,
	// used both for explicit unsubscribes and for pruning permanently-gone targets.
	DeleteSubscriptionByEndpoint(ctx context.Context, endpoint string) error

	// FindSubscriptionsByOrder retrieves subscriptions scoped to an order.
	FindSubscriptionsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.PushSubscription, error)

	// FindSubscriptionsByUser retrieves subscriptions owned by a user.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// FindSubscriptionsByStoreAndRole retrieves store-scoped subscriptions
	// limited to a role.
	FindSubscriptionsByStoreAndRole(ctx context.Context, storeID uuid.UUID, role entity.Role) ([]*entity.PushSubscription, error)

	// FindSubscriptionsByStore retrieves every subscription scoped to a store.
	FindSubscriptionsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.PushSubscription, error)
}

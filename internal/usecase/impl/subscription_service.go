// Package impl contains the use case implementations.
package impl

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo repository.PushSubscriptionRepository
}

// NewSubscriptionService creates the push subscription management service.
func NewSubscriptionService(subscriptionRepo repository.PushSubscriptionRepository) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
	}
}

// RegisterSubscription validates and stores a push registration. The endpoint
// is the natural key, so re-subscribing replaces the prior record.
func (s *subscriptionService) RegisterSubscription(ctx context.Context, input *usecase.SubscriptionInput) (*entity.PushSubscription, error) {
	if input.Endpoint == "" {
		return nil, domainerrors.ErrSubscriptionInvalid.WithDetails("endpoint is required")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrSubscriptionInvalid.WithDetails("unknown role: " + input.Role.String())
	}

	now := time.Now()
	subscription := &entity.PushSubscription{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Role:      input.Role,
		StoreID:   input.StoreID,
		OrderID:   input.OrderID,
		Endpoint:  input.Endpoint,
		P256dhKey: input.P256dhKey,
		AuthKey:   input.AuthKey,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to store push subscription")
	}

	return subscription, nil
}

// RemoveSubscription deletes the subscription registered for the endpoint.
func (s *subscriptionService) RemoveSubscription(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return domainerrors.ErrSubscriptionInvalid.WithDetails("endpoint is required")
	}

	if err := s.subscriptionRepo.DeleteSubscriptionByEndpoint(ctx, endpoint); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to delete push subscription")
	}

	return nil
}

package impl

import (
	"context"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	mockRepo "dispatch/internal/mocks/repository"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_RegisterSubscription_Success(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()
	input := &usecase.SubscriptionInput{
		UserID:    userID,
		Role:      entity.RoleStoreOwner,
		StoreID:   &storeID,
		Endpoint:  "https://push.example/endpoint",
		P256dhKey: "p256dh",
		AuthKey:   "auth",
	}

	subscriptionRepo.EXPECT().UpsertSubscription(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Run(func(_ context.Context, subscription *entity.PushSubscription) {
			assert.Equal(t, userID, subscription.UserID)
			assert.Equal(t, entity.RoleStoreOwner, subscription.Role)
			assert.Equal(t, input.Endpoint, subscription.Endpoint)
		}).
		Return(nil)

	subscription, err := svc.RegisterSubscription(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, subscription.ID)
	assert.Equal(t, &storeID, subscription.StoreID)
	assert.Nil(t, subscription.OrderID)
}

func TestSubscriptionService_RegisterSubscription_MissingEndpoint(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	subscription, err := svc.RegisterSubscription(context.Background(), &usecase.SubscriptionInput{
		UserID: uuid.New(),
		Role:   entity.RoleDriver,
	})

	assert.Nil(t, subscription)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUBSCRIPTION_INVALID", appErr.ErrorCode())
}

func TestSubscriptionService_RegisterSubscription_InvalidRole(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	subscription, err := svc.RegisterSubscription(context.Background(), &usecase.SubscriptionInput{
		UserID:   uuid.New(),
		Role:     entity.Role("admin"),
		Endpoint: "https://push.example/endpoint",
	})

	assert.Nil(t, subscription)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUBSCRIPTION_INVALID", appErr.ErrorCode())
}

func TestSubscriptionService_RegisterSubscription_RepositoryFailure(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	ctx := context.Background()

	subscriptionRepo.EXPECT().UpsertSubscription(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(errors.New("connection refused"))

	subscription, err := svc.RegisterSubscription(ctx, &usecase.SubscriptionInput{
		UserID:   uuid.New(),
		Role:     entity.RoleCustomer,
		Endpoint: "https://push.example/endpoint",
	})

	assert.Nil(t, subscription)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store push subscription")
}

func TestSubscriptionService_RemoveSubscription_Success(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	ctx := context.Background()

	subscriptionRepo.EXPECT().DeleteSubscriptionByEndpoint(ctx, "https://push.example/endpoint").Return(nil)

	err := svc.RemoveSubscription(ctx, "https://push.example/endpoint")

	require.NoError(t, err)
}

func TestSubscriptionService_RemoveSubscription_NotFound(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	ctx := context.Background()

	subscriptionRepo.EXPECT().DeleteSubscriptionByEndpoint(ctx, "https://push.example/missing").
		Return(repository.ErrSubscriptionNotFound)

	err := svc.RemoveSubscription(ctx, "https://push.example/missing")

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_RemoveSubscription_EmptyEndpoint(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := NewSubscriptionService(subscriptionRepo)

	err := svc.RemoveSubscription(context.Background(), "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUBSCRIPTION_INVALID", appErr.ErrorCode())
}

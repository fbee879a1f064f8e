package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	mockRepo "dispatch/internal/mocks/repository"
	mockSvc "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockPushSubscriptionRepository,
	*mockSvc.MockPushSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(
		notificationRepo,
		subscriptionRepo,
		pushSender,
		&config.Config{},
		logger,
	)

	return svc, notificationRepo, subscriptionRepo, pushSender
}

func TestNotificationService_NotifyDrivers_Success(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "New delivery offer", Body: "Order ready for pickup"}

	driverA := uuid.New()
	driverB := uuid.New()
	recipients := []usecase.Recipient{
		{DriverID: driverA, OrderID: uuid.New(), OfferID: uuid.New()},
		{DriverID: driverB, OrderID: uuid.New(), OfferID: uuid.New()},
	}

	notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.DriverNotification")).Return(nil)
	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, driverA).
		Return([]*entity.PushSubscription{{UserID: driverA, Endpoint: "https://push.example/a"}}, nil)
	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, driverB).
		Return([]*entity.PushSubscription{{UserID: driverB, Endpoint: "https://push.example/b"}}, nil)
	pushSender.EXPECT().Send(ctx, mock.AnythingOfType("*entity.PushSubscription"), payload).
		Return(service.Delivered, nil)

	result := svc.NotifyDrivers(ctx, recipients, payload)

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 2, result.Total)
}

func TestNotificationService_NotifyDrivers_NoRecipients(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	result := svc.NotifyDrivers(context.Background(), nil, &service.PushPayload{Title: "x"})

	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Total)
}

func TestNotificationService_NotifyDrivers_PartialFailure(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "New delivery offer", Body: "Order ready for pickup"}

	driverOK := uuid.New()
	driverFail := uuid.New()
	recipients := []usecase.Recipient{
		{DriverID: driverOK, OrderID: uuid.New(), OfferID: uuid.New()},
		{DriverID: driverFail, OrderID: uuid.New(), OfferID: uuid.New()},
	}

	subOK := &entity.PushSubscription{UserID: driverOK, Endpoint: "https://push.example/ok"}
	subFail := &entity.PushSubscription{UserID: driverFail, Endpoint: "https://push.example/fail"}

	notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.DriverNotification")).Return(nil)
	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, driverOK).
		Return([]*entity.PushSubscription{subOK}, nil)
	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, driverFail).
		Return([]*entity.PushSubscription{subFail}, nil)
	pushSender.EXPECT().Send(ctx, subOK, payload).Return(service.Delivered, nil)
	pushSender.EXPECT().Send(ctx, subFail, payload).
		Return(service.TransientFailure, errors.New("push service unavailable"))

	result := svc.NotifyDrivers(ctx, recipients, payload)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Total)
}

func TestNotificationService_NotifyDrivers_InAppFailureDoesNotBlockPush(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "New delivery offer"}

	driverID := uuid.New()
	recipients := []usecase.Recipient{{DriverID: driverID, OrderID: uuid.New(), OfferID: uuid.New()}}
	sub := &entity.PushSubscription{UserID: driverID, Endpoint: "https://push.example/a"}

	notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.DriverNotification")).
		Return(errors.New("insert failed"))
	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, driverID).
		Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, payload).Return(service.Delivered, nil)

	result := svc.NotifyDrivers(ctx, recipients, payload)

	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_NotifyDrivers_NoSubscriptionsNotCounted(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	driverID := uuid.New()
	recipients := []usecase.Recipient{{DriverID: driverID, OrderID: uuid.New(), OfferID: uuid.New()}}

	notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.DriverNotification")).Return(nil)
	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, driverID).
		Return([]*entity.PushSubscription{}, nil)

	result := svc.NotifyDrivers(ctx, recipients, &service.PushPayload{Title: "x"})

	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Total)
}

func TestNotificationService_SendPush_OrderScopeWins(t *testing.T) {
	svc, _, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()
	payload := &service.PushPayload{Title: "Order update"}

	// Order and store are both set; only the order scope must be queried.
	subscriptionRepo.EXPECT().FindSubscriptionsByOrder(ctx, orderID).
		Return([]*entity.PushSubscription{{Endpoint: "https://push.example/a"}}, nil)
	pushSender.EXPECT().Send(ctx, mock.AnythingOfType("*entity.PushSubscription"), payload).
		Return(service.Delivered, nil)

	result, err := svc.SendPush(ctx, usecase.PushTarget{OrderID: &orderID, StoreID: &storeID}, payload)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Total)
}

func TestNotificationService_SendPush_StoreAndRoleScope(t *testing.T) {
	svc, _, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	storeID := uuid.New()
	role := entity.RoleStoreOwner
	payload := &service.PushPayload{Title: "New order"}

	subscriptionRepo.EXPECT().FindSubscriptionsByStoreAndRole(ctx, storeID, role).
		Return([]*entity.PushSubscription{{Endpoint: "https://push.example/owner"}}, nil)
	pushSender.EXPECT().Send(ctx, mock.AnythingOfType("*entity.PushSubscription"), payload).
		Return(service.Delivered, nil)

	result, err := svc.SendPush(ctx, usecase.PushTarget{StoreID: &storeID, Role: &role}, payload)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_SendPush_NoScope(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	result, err := svc.SendPush(context.Background(), usecase.PushTarget{}, &service.PushPayload{Title: "x"})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestNotificationService_SendPush_NoSubscriptions(t *testing.T) {
	svc, _, subscriptionRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{}, nil)

	result, err := svc.SendPush(ctx, usecase.PushTarget{UserID: &userID}, &service.PushPayload{Title: "x"})

	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Total)
}

func TestNotificationService_SendPush_PrunesGoneEndpoint(t *testing.T) {
	svc, _, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	payload := &service.PushPayload{Title: "Order update"}

	subLive := &entity.PushSubscription{UserID: userID, Endpoint: "https://push.example/live"}
	subGone := &entity.PushSubscription{UserID: userID, Endpoint: "https://push.example/gone"}

	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{subLive, subGone}, nil)
	pushSender.EXPECT().Send(ctx, subLive, payload).Return(service.Delivered, nil)
	pushSender.EXPECT().Send(ctx, subGone, payload).
		Return(service.RecipientGone, errors.New("410 gone"))
	subscriptionRepo.EXPECT().DeleteSubscriptionByEndpoint(ctx, subGone.Endpoint).Return(nil)

	result, err := svc.SendPush(ctx, usecase.PushTarget{UserID: &userID}, payload)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Total)
}

func TestNotificationService_SendPush_PruneRaceTolerated(t *testing.T) {
	svc, _, subscriptionRepo, pushSender := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	payload := &service.PushPayload{Title: "Order update"}

	subGone := &entity.PushSubscription{UserID: userID, Endpoint: "https://push.example/gone"}

	subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{subGone}, nil)
	pushSender.EXPECT().Send(ctx, subGone, payload).
		Return(service.RecipientGone, errors.New("404 not found"))
	// A concurrent prune already removed the row; that is not a failure.
	subscriptionRepo.EXPECT().DeleteSubscriptionByEndpoint(ctx, subGone.Endpoint).
		Return(repository.ErrSubscriptionNotFound)

	result, err := svc.SendPush(ctx, usecase.PushTarget{UserID: &userID}, payload)

	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Total)
}

func TestNotificationService_DriverNotifications_Success(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	driverID := uuid.New()
	notifications := []*entity.DriverNotification{
		{ID: uuid.New(), DriverID: driverID, Title: "New delivery offer"},
	}

	notificationRepo.EXPECT().FindNotificationsByDriver(ctx, driverID, 50, 10).
		Return(notifications, nil)

	got, err := svc.DriverNotifications(ctx, driverID, 50, 10)

	require.NoError(t, err)
	assert.Equal(t, notifications, got)
}

func TestNotificationService_DriverNotifications_ClampsPagination(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	driverID := uuid.New()

	// Zero limit falls back to the default page size, negative offset to zero.
	notificationRepo.EXPECT().FindNotificationsByDriver(ctx, driverID, 20, 0).
		Return([]*entity.DriverNotification{}, nil)
	// An oversized limit is capped.
	notificationRepo.EXPECT().FindNotificationsByDriver(ctx, driverID, 100, 5).
		Return([]*entity.DriverNotification{}, nil)

	_, err := svc.DriverNotifications(ctx, driverID, 0, -3)
	require.NoError(t, err)

	_, err = svc.DriverNotifications(ctx, driverID, 500, 5)
	require.NoError(t, err)
}

func TestNotificationService_DriverNotifications_RepositoryFailure(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	driverID := uuid.New()

	notificationRepo.EXPECT().FindNotificationsByDriver(ctx, driverID, 20, 0).
		Return(nil, errors.New("connection refused"))

	got, err := svc.DriverNotifications(ctx, driverID, 0, 0)

	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load driver notifications")
}

func TestNotificationService_SendPush_ResolveFailure(t *testing.T) {
	svc, _, subscriptionRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	storeID := uuid.New()

	subscriptionRepo.EXPECT().FindSubscriptionsByStore(ctx, storeID).
		Return(nil, errors.New("connection refused"))

	result, err := svc.SendPush(ctx, usecase.PushTarget{StoreID: &storeID}, &service.PushPayload{Title: "x"})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve push target")
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	mockRepo "dispatch/internal/mocks/repository"
	mockSvc "dispatch/internal/mocks/service"
	mockUC "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceMocks struct {
	orderRepo      *mockRepo.MockOrderRepository
	storeRepo      *mockRepo.MockStoreRepository
	driverRepo     *mockRepo.MockDriverRepository
	offerRepo      *mockRepo.MockOfferRepository
	txManager      *mockRepo.MockTransactionManager
	notificationUC *mockUC.MockNotificationUsecase
	publisher      *mockSvc.MockEventPublisher
}

func createTestDispatchService(t *testing.T) (usecase.DispatchUsecase, *dispatchServiceMocks) {
	mocks := &dispatchServiceMocks{
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		storeRepo:      mockRepo.NewMockStoreRepository(t),
		driverRepo:     mockRepo.NewMockDriverRepository(t),
		offerRepo:      mockRepo.NewMockOfferRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		notificationUC: mockUC.NewMockNotificationUsecase(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDispatchService(
		mocks.orderRepo,
		mocks.storeRepo,
		mocks.driverRepo,
		mocks.offerRepo,
		mocks.txManager,
		mocks.notificationUC,
		mocks.publisher,
		logger,
	)

	return svc, mocks
}

// expectTransaction wires the transaction manager to run the callback against
// a factory handing out the given offer repository.
func expectTransaction(t *testing.T, mocks *dispatchServiceMocks, txOfferRepo *mockRepo.MockOfferRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOfferRepository().Return(txOfferRepo)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestDispatchService_Broadcast_Success(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID, Status: entity.OrderStatusPlaced}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, Name: "Corner Deli", ManualOpen: true}, nil)
	mocks.driverRepo.EXPECT().FindEligibleDriversByStore(ctx, storeID).
		Return([]*entity.DriverProfile{
			{ID: uuid.New(), StoreID: storeID, Name: "Alice", IsActive: true, Available: true, Status: entity.DriverStatusAvailable},
			{ID: uuid.New(), StoreID: storeID, Name: "Bob", IsActive: true, Available: true, Status: entity.DriverStatusAvailable},
		}, nil)

	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	expectTransaction(t, mocks, txOfferRepo)
	txOfferRepo.EXPECT().CancelPendingOffersByOrder(ctx, orderID).Return(1, nil)
	txOfferRepo.EXPECT().CreateOffers(ctx, mock.AnythingOfType("[]*entity.Offer")).
		Run(func(_ context.Context, offers []*entity.Offer) {
			require.Len(t, offers, 2)
			for _, offer := range offers {
				assert.Equal(t, orderID, offer.OrderID)
				assert.Equal(t, entity.OfferStatusPending, offer.Status)
			}
		}).
		Return(nil)

	mocks.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusAwaitingDriver).Return(nil)
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).Return(nil)
	mocks.notificationUC.EXPECT().
		NotifyDrivers(ctx, mock.AnythingOfType("[]usecase.Recipient"), mock.AnythingOfType("*service.PushPayload")).
		Return(&usecase.FanoutResult{Sent: 2, Total: 2})

	result, err := svc.Broadcast(ctx, orderID, storeID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.OffersCreated)
	assert.Equal(t, []string{"Alice", "Bob"}, result.DriverNames)
	assert.Equal(t, 2, result.PushSent)
	assert.Equal(t, 2, result.PushTotal)
}

func TestDispatchService_Broadcast_OrderNotFound(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	result, err := svc.Broadcast(ctx, orderID, storeID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestDispatchService_Broadcast_OrderStoreMismatch(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: uuid.New()}, nil)

	result, err := svc.Broadcast(ctx, orderID, storeID)

	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestDispatchService_Broadcast_StoreManuallyClosed(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, ManualOpen: false}, nil)

	result, err := svc.Broadcast(ctx, orderID, storeID)

	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_CLOSED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "manual_closed")
}

func TestDispatchService_Broadcast_NoEligibleDrivers(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID, Status: entity.OrderStatusPlaced}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, ManualOpen: true}, nil)
	mocks.driverRepo.EXPECT().FindEligibleDriversByStore(ctx, storeID).
		Return([]*entity.DriverProfile{}, nil)

	// No transaction, no status update, no fan-out: the order stays as-is so a
	// later re-broadcast can pick it up.
	result, err := svc.Broadcast(ctx, orderID, storeID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.OffersCreated)
	assert.Empty(t, result.DriverNames)
	assert.Empty(t, result.OfferIDs)
}

func TestDispatchService_Broadcast_OfferCreationFails(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, ManualOpen: true}, nil)
	mocks.driverRepo.EXPECT().FindEligibleDriversByStore(ctx, storeID).
		Return([]*entity.DriverProfile{
			{ID: uuid.New(), StoreID: storeID, Name: "Alice", IsActive: true, Available: true, Status: entity.DriverStatusAvailable},
		}, nil)

	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	expectTransaction(t, mocks, txOfferRepo)
	txOfferRepo.EXPECT().CancelPendingOffersByOrder(ctx, orderID).Return(0, nil)
	txOfferRepo.EXPECT().CreateOffers(ctx, mock.AnythingOfType("[]*entity.Offer")).
		Return(errors.New("insert failed"))

	result, err := svc.Broadcast(ctx, orderID, storeID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrOfferCreationFailed)
}

func TestDispatchService_Broadcast_StatusFlipFails(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, ManualOpen: true}, nil)
	mocks.driverRepo.EXPECT().FindEligibleDriversByStore(ctx, storeID).
		Return([]*entity.DriverProfile{
			{ID: uuid.New(), StoreID: storeID, Name: "Alice", IsActive: true, Available: true, Status: entity.DriverStatusAvailable},
		}, nil)

	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	expectTransaction(t, mocks, txOfferRepo)
	txOfferRepo.EXPECT().CancelPendingOffersByOrder(ctx, orderID).Return(0, nil)
	txOfferRepo.EXPECT().CreateOffers(ctx, mock.AnythingOfType("[]*entity.Offer")).Return(nil)

	mocks.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusAwaitingDriver).
		Return(errors.New("update failed"))

	// The flip failure is reported, not absorbed: the offers stay valid and
	// re-broadcast is the recovery path.
	result, err := svc.Broadcast(ctx, orderID, storeID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrOrderUpdateFailed)
}

func TestDispatchService_Broadcast_ScheduledStoreOpen(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	// Every day open around the clock so the test is stable at any wall time.
	allDay := entity.DayEntry{Enabled: true, Open: "00:00", Close: "24:00"}
	schedule := &entity.WeeklySchedule{
		Monday: allDay, Tuesday: allDay, Wednesday: allDay, Thursday: allDay,
		Friday: allDay, Saturday: allDay, Sunday: allDay,
	}

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, ManualOpen: true, Schedule: schedule}, nil)
	mocks.driverRepo.EXPECT().FindEligibleDriversByStore(ctx, storeID).
		Return([]*entity.DriverProfile{}, nil)

	_, err := svc.Broadcast(ctx, orderID, storeID)

	require.NoError(t, err)
}

func TestDispatchService_OrderOffers_Success(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	offers := []*entity.Offer{
		{ID: uuid.New(), OrderID: orderID, StoreID: storeID, Status: entity.OfferStatusPending},
		{ID: uuid.New(), OrderID: orderID, StoreID: storeID, Status: entity.OfferStatusCancelled},
	}

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID}, nil)
	mocks.offerRepo.EXPECT().FindOffersByOrder(ctx, orderID).Return(offers, nil)

	got, err := svc.OrderOffers(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, offers, got)
}

func TestDispatchService_OrderOffers_OrderNotFound(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	got, err := svc.OrderOffers(ctx, orderID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestDispatchService_ExpireStaleOffers(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()

	mocks.offerRepo.EXPECT().ExpireOffersOlderThan(ctx, mock.AnythingOfType("time.Time")).
		Return(3, nil)

	expired, err := svc.ExpireStaleOffers(ctx, 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}

func TestDispatchService_ExpireStaleOffers_DisabledTTL(t *testing.T) {
	svc, _ := createTestDispatchService(t)

	expired, err := svc.ExpireStaleOffers(context.Background(), 0)

	require.NoError(t, err)
	assert.Zero(t, expired)
}

func TestDispatchService_Broadcast_PublishFailureDoesNotFailBroadcast(t *testing.T) {
	svc, mocks := createTestDispatchService(t)

	ctx := context.Background()
	orderID := uuid.New()
	storeID := uuid.New()

	mocks.orderRepo.EXPECT().FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, StoreID: storeID}, nil)
	mocks.storeRepo.EXPECT().FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, Name: "Corner Deli", ManualOpen: true}, nil)
	mocks.driverRepo.EXPECT().FindEligibleDriversByStore(ctx, storeID).
		Return([]*entity.DriverProfile{
			{ID: uuid.New(), StoreID: storeID, Name: "Alice", IsActive: true, Available: true, Status: entity.DriverStatusAvailable},
		}, nil)

	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	expectTransaction(t, mocks, txOfferRepo)
	txOfferRepo.EXPECT().CancelPendingOffersByOrder(ctx, orderID).Return(0, nil)
	txOfferRepo.EXPECT().CreateOffers(ctx, mock.AnythingOfType("[]*entity.Offer")).Return(nil)

	mocks.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusAwaitingDriver).Return(nil)
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(errors.New("broker unavailable"))
	mocks.notificationUC.EXPECT().
		NotifyDrivers(ctx, mock.AnythingOfType("[]usecase.Recipient"), mock.AnythingOfType("*service.PushPayload")).
		Run(func(_ context.Context, recipients []usecase.Recipient, payload *service.PushPayload) {
			require.Len(t, recipients, 1)
			assert.Equal(t, orderID.String(), payload.Tag)
		}).
		Return(&usecase.FanoutResult{Sent: 1, Total: 1})

	result, err := svc.Broadcast(ctx, orderID, storeID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.OffersCreated)
}

// Package impl contains the use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/domain/availability"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	orderRepo      repository.OrderRepository
	storeRepo      repository.StoreRepository
	driverRepo     repository.DriverRepository
	offerRepo      repository.OfferRepository
	txManager      repository.TransactionManager
	notificationUC usecase.NotificationUsecase
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewDispatchService creates the offer broadcast coordinator.
func NewDispatchService(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	driverRepo repository.DriverRepository,
	offerRepo repository.OfferRepository,
	txManager repository.TransactionManager,
	notificationUC usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		orderRepo:      orderRepo,
		storeRepo:      storeRepo,
		driverRepo:     driverRepo,
		offerRepo:      offerRepo,
		txManager:      txManager,
		notificationUC: notificationUC,
		publisher:      publisher,
		logger:         logger,
	}
}

// Broadcast creates the race between eligible drivers for one order. It never
// decides a winner: exclusivity of acceptance belongs to the offer claimer's
// atomic conditional update. The coordinator's obligation is a well-formed
// race, meaning no two simultaneously-pending offer sets for the same order.
func (s *dispatchService) Broadcast(ctx context.Context, orderID, storeID uuid.UUID) (*usecase.BroadcastResult, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.StoreID != storeID {
		return nil, domainerrors.ErrInvalidInput.WithDetails("order does not belong to store")
	}

	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store")
	}

	avail := availability.Evaluate(store.ManualOpen, store.Schedule, time.Now().In(store.Location()))
	if !avail.IsOpen {
		details := string(avail.Reason)
		if avail.NextOpen != "" {
			details = fmt.Sprintf("%s, %s", avail.Reason, avail.NextOpen)
		}

		return nil, domainerrors.ErrStoreClosed.WithDetails(details)
	}

	drivers, err := s.driverRepo.FindEligibleDriversByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query eligible drivers")
	}

	// No eligible drivers is a normal terminal outcome. The order status is
	// left untouched so a later re-broadcast can pick it up.
	if len(drivers) == 0 {
		s.logger.Info("broadcast found no eligible drivers",
			slog.String("order_id", orderID.String()),
			slog.String("store_id", storeID.String()),
		)

		return &usecase.BroadcastResult{
			OrderID:     orderID,
			OfferIDs:    []uuid.UUID{},
			DriverNames: []string{},
		}, nil
	}

	now := time.Now()
	offers := make([]*entity.Offer, 0, len(drivers))
	driverNames := make([]string, 0, len(drivers))
	for _, driver := range drivers {
		offers = append(offers, &entity.Offer{
			ID:        uuid.New(),
			OrderID:   orderID,
			DriverID:  driver.ID,
			StoreID:   storeID,
			Status:    entity.OfferStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		driverNames = append(driverNames, driver.Name)
	}

	// Supersede and insert inside one transaction so no concurrent reader
	// observes the old offer set claimable alongside the new one.
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txOfferRepo := repoFactory.NewOfferRepository()

		cancelled, err := txOfferRepo.CancelPendingOffersByOrder(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to supersede pending offers")
		}
		if cancelled > 0 {
			s.logger.Info("superseded stale offers",
				slog.String("order_id", orderID.String()),
				slog.Int64("cancelled", cancelled),
			)
		}

		return txOfferRepo.CreateOffers(ctx, offers)
	})
	if err != nil {
		return nil, domainerrors.ErrOfferCreationFailed.WrapMessage(err.Error())
	}

	// The status flip is reported on failure, not absorbed: the offers stay
	// valid and re-broadcast is the recovery path (supersede makes it idempotent).
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, entity.OrderStatusAwaitingDriver); err != nil {
		return nil, domainerrors.ErrOrderUpdateFailed.WrapMessage(err.Error())
	}

	s.publishBroadcastEvents(ctx, store, orderID, offers)

	payload := &service.PushPayload{
		Title: "New delivery offer",
		Body:  fmt.Sprintf("%s has a new order ready for pickup", store.Name),
		Tag:   orderID.String(),
		Data: map[string]string{
			"order_id": orderID.String(),
			"store_id": storeID.String(),
		},
	}

	recipients := make([]usecase.Recipient, 0, len(offers))
	offerIDs := make([]uuid.UUID, 0, len(offers))
	for _, offer := range offers {
		recipients = append(recipients, usecase.Recipient{
			DriverID: offer.DriverID,
			OrderID:  offer.OrderID,
			OfferID:  offer.ID,
		})
		offerIDs = append(offerIDs, offer.ID)
	}

	fanout := s.notificationUC.NotifyDrivers(ctx, recipients, payload)

	return &usecase.BroadcastResult{
		OrderID:       orderID,
		OffersCreated: len(offers),
		OfferIDs:      offerIDs,
		DriverNames:   driverNames,
		PushSent:      fanout.Sent,
		PushTotal:     fanout.Total,
	}, nil
}

// publishBroadcastEvents emits the store-scoped change events consumed by the
// realtime relay. Publishing is best effort; failures are logged only.
func (s *dispatchService) publishBroadcastEvents(ctx context.Context, store *entity.Store, orderID uuid.UUID, offers []*entity.Offer) {
	offerIDs := make([]string, 0, len(offers))
	driverIDs := make([]string, 0, len(offers))
	for _, offer := range offers {
		offerIDs = append(offerIDs, offer.ID.String())
		driverIDs = append(driverIDs, offer.DriverID.String())
	}

	events := []*service.DispatchEvent{
		{
			Type:        service.EventOrderStatusChanged,
			StoreID:     store.ID.String(),
			OrderID:     orderID.String(),
			OrderStatus: entity.OrderStatusAwaitingDriver.String(),
		},
		{
			Type:      service.EventOffersCreated,
			StoreID:   store.ID.String(),
			OrderID:   orderID.String(),
			OfferIDs:  offerIDs,
			DriverIDs: driverIDs,
		},
	}

	for _, event := range events {
		if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
			s.logger.Warn("failed to publish dispatch event",
				slog.String("type", event.Type),
				slog.String("order_id", event.OrderID),
				slog.Any("error", err),
			)
		}
	}
}

// OrderOffers retrieves the order's full offer history, newest first.
func (s *dispatchService) OrderOffers(ctx context.Context, orderID uuid.UUID) ([]*entity.Offer, error) {
	if _, err := s.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	offers, err := s.offerRepo.FindOffersByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers for order")
	}

	return offers, nil
}

// ExpireStaleOffers applies the time-boxed claim window to outstanding offers.
func (s *dispatchService) ExpireStaleOffers(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}

	expired, err := s.offerRepo.ExpireOffersOlderThan(ctx, time.Now().Add(-ttl))
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire stale offers")
	}

	if expired > 0 {
		s.logger.Info("expired stale offers", slog.Int64("expired", expired))
	}

	return expired, nil
}

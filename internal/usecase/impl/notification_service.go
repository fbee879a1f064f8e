// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultFanoutWorkers = 8

	defaultNotificationPageSize = 20
	maxNotificationPageSize     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	subscriptionRepo repository.PushSubscriptionRepository
	pushSender       service.PushSender
	logger           *slog.Logger
	workers          int
}

// NewNotificationService creates the notification fan-out engine.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	subscriptionRepo repository.PushSubscriptionRepository,
	pushSender service.PushSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	workers := defaultFanoutWorkers
	if cfg.Dispatch != nil && cfg.Dispatch.FanoutWorkers > 0 {
		workers = cfg.Dispatch.FanoutWorkers
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		subscriptionRepo: subscriptionRepo,
		pushSender:       pushSender,
		logger:           logger,
		workers:          workers,
	}
}

// NotifyDrivers fans the message out to every recipient through a bounded
// worker pool. The deliveries share no mutable state; the pool exists for
// resource limits, not correctness. A recipient counts as sent when at least
// one of its subscriptions accepted the push.
func (s *notificationService) NotifyDrivers(ctx context.Context, recipients []usecase.Recipient, payload *service.PushPayload) *usecase.FanoutResult {
	result := &usecase.FanoutResult{Total: len(recipients)}
	if len(recipients) == 0 {
		return result
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		pool = make(chan struct{}, s.workers)
	)

	for _, recipient := range recipients {
		wg.Add(1)
		pool <- struct{}{}

		go func(recipient usecase.Recipient) {
			defer wg.Done()
			defer func() { <-pool }()

			if s.notifyOne(ctx, recipient, payload) {
				mu.Lock()
				result.Sent++
				mu.Unlock()
			}
		}(recipient)
	}

	wg.Wait()

	return result
}

// notifyOne writes the durable in-app record, then attempts push delivery to
// each of the driver's subscriptions. The in-app write and the push attempt
// fail independently; neither aborts the other.
func (s *notificationService) notifyOne(ctx context.Context, recipient usecase.Recipient, payload *service.PushPayload) bool {
	notification := &entity.DriverNotification{
		ID:        uuid.New(),
		DriverID:  recipient.DriverID,
		OrderID:   recipient.OrderID,
		OfferID:   recipient.OfferID,
		Title:     payload.Title,
		Body:      payload.Body,
		Tag:       payload.Tag,
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.logger.Warn("failed to write in-app notification",
			slog.String("driver_id", recipient.DriverID.String()),
			slog.Any("error", err),
		)
	}

	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, recipient.DriverID)
	if err != nil {
		s.logger.Warn("failed to resolve driver subscriptions",
			slog.String("driver_id", recipient.DriverID.String()),
			slog.Any("error", err),
		)

		return false
	}

	delivered := 0
	for _, subscription := range subscriptions {
		if s.deliver(ctx, subscription, payload) {
			delivered++
		}
	}

	return delivered > 0
}

// SendPush resolves the target scope and performs one delivery attempt per
// matching subscription. At-least-once: no deduplication happens here, the
// payload tag carries the caller's idempotency key.
func (s *notificationService) SendPush(ctx context.Context, target usecase.PushTarget, payload *service.PushPayload) (*usecase.FanoutResult, error) {
	subscriptions, err := s.resolveSubscriptions(ctx, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve push target")
	}

	result := &usecase.FanoutResult{Total: len(subscriptions)}
	if len(subscriptions) == 0 {
		return result, nil
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		pool = make(chan struct{}, s.workers)
	)

	for _, subscription := range subscriptions {
		wg.Add(1)
		pool <- struct{}{}

		go func(subscription *entity.PushSubscription) {
			defer wg.Done()
			defer func() { <-pool }()

			if s.deliver(ctx, subscription, payload) {
				mu.Lock()
				result.Sent++
				mu.Unlock()
			}
		}(subscription)
	}

	wg.Wait()

	return result, nil
}

// DriverNotifications retrieves a driver's in-app feed, newest first, with
// limit and offset clamped to sane bounds.
func (s *notificationService) DriverNotifications(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.DriverNotification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if limit > maxNotificationPageSize {
		limit = maxNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByDriver(ctx, driverID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load driver notifications")
	}

	return notifications, nil
}

// resolveSubscriptions picks the first populated scope: order, then user,
// then store+role, then store. Scopes are never combined.
func (s *notificationService) resolveSubscriptions(ctx context.Context, target usecase.PushTarget) ([]*entity.PushSubscription, error) {
	switch {
	case target.OrderID != nil:
		return s.subscriptionRepo.FindSubscriptionsByOrder(ctx, *target.OrderID)
	case target.UserID != nil:
		return s.subscriptionRepo.FindSubscriptionsByUser(ctx, *target.UserID)
	case target.StoreID != nil && target.Role != nil:
		return s.subscriptionRepo.FindSubscriptionsByStoreAndRole(ctx, *target.StoreID, *target.Role)
	case target.StoreID != nil:
		return s.subscriptionRepo.FindSubscriptionsByStore(ctx, *target.StoreID)
	default:
		return nil, errors.New("push target has no scope")
	}
}

// deliver performs a single push attempt and handles the outcome: a
// permanently-gone endpoint is pruned, a transient failure is logged and the
// subscription retained for a future attempt.
func (s *notificationService) deliver(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) bool {
	outcome, err := s.pushSender.Send(ctx, subscription, payload)
	switch outcome {
	case service.Delivered:
		return true
	case service.RecipientGone:
		if pruneErr := s.subscriptionRepo.DeleteSubscriptionByEndpoint(ctx, subscription.Endpoint); pruneErr != nil &&
			!errors.Is(pruneErr, repository.ErrSubscriptionNotFound) {
			s.logger.Warn("failed to prune gone subscription",
				slog.String("endpoint", subscription.Endpoint),
				slog.Any("error", pruneErr),
			)
		}

		return false
	default:
		s.logger.Warn("push delivery failed",
			slog.String("endpoint", subscription.Endpoint),
			slog.Any("error", err),
		)

		return false
	}
}

// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/google/uuid"
)

// Recipient identifies one driver targeted by a fan-out, together with the
// offer and order the notification refers to.
type Recipient struct {
	DriverID uuid.UUID
	OrderID  uuid.UUID
	OfferID  uuid.UUID
}

// FanoutResult aggregates a fan-out: Total recipients attempted and Sent
// recipients that received at least one successful push delivery.
type FanoutResult struct {
	Sent  int `json:"sent"`
	Total int `json:"total"`
}

// PushTarget selects the subscriptions a push should reach. Scopes are not
// combined: the first populated scope wins, in the order OrderID, UserID,
// (StoreID, Role), StoreID.
type PushTarget struct {
	OrderID *uuid.UUID
	UserID  *uuid.UUID
	StoreID *uuid.UUID
	Role    *entity.Role
}

// NotificationUsecase delivers notifications to recipients through the in-app
// and push channels.
type NotificationUsecase interface {
	// NotifyDrivers fans a message out to the given recipients concurrently.
	// Each recipient independently gets one durable in-app record and a push
	// delivery attempt per registered subscription. One recipient's failure
	// never blocks or fails the others; the aggregate result is always
	// returned, never an aborting error.
	NotifyDrivers(ctx context.Context, recipients []Recipient, payload *service.PushPayload) *FanoutResult

	// SendPush resolves the target scope to stored subscriptions and performs
	// one delivery attempt per subscription, pruning permanently-gone
	// endpoints. Returns the aggregate sent/total counts; the error is
	// non-nil only when subscription resolution itself fails.
	SendPush(ctx context.Context, target PushTarget, payload *service.PushPayload) (*FanoutResult, error)

	// DriverNotifications retrieves a driver's in-app notification feed with
	// pagination, newest first. Out-of-range limits are clamped.
	DriverNotifications(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.DriverNotification, error)
}

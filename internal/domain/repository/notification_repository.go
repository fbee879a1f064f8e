// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for in-app notification
// database operations.
type NotificationRepository interface {
	// CreateNotification persists one durable in-app notification record.
	CreateNotification(ctx context.Context, notification *entity.DriverNotification) error

	// FindNotificationsByDriver retrieves a driver's notifications with
	// pagination, newest first.
	FindNotificationsByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.DriverNotification, error)
}

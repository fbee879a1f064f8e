// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus transitions the order's lifecycle status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

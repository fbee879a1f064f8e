// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
)

// StoreRepository defines read access to store records.
type StoreRepository interface {
	// FindStoreByID retrieves a store by its unique ID, including its
	// availability schedule.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
}

package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// The broadcast flow uses it so superseding stale offers, inserting the fresh
// set and flipping the order status commit or roll back together.
type RepositoryFactory interface {
	// NewOrderRepository creates an order repository bound to the transaction.
	NewOrderRepository() OrderRepository

	// NewOfferRepository creates an offer repository bound to the transaction.
	NewOfferRepository() OfferRepository
}

// TransactionManager defines the interface for managing database transactions.
type TransactionManager interface {
	// Execute runs fn within a single database transaction. The factory
	// passed to fn yields repositories bound to that transaction. Execute
	// commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

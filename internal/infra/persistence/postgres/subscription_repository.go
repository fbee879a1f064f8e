// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// UpsertSubscription creates a subscription or, when the endpoint already
// exists, replaces the prior record's owner, scope and keys in place.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "role", "store_id", "order_id",
				"p256dh_key", "auth_key", "updated_at",
			}),
		}).
		Create(subscriptionM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// DeleteSubscriptionByEndpoint removes the subscription owning the endpoint.
func (repo *pushSubscriptionRepository) DeleteSubscriptionByEndpoint(ctx context.Context, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindSubscriptionsByOrder retrieves subscriptions scoped to an order.
func (repo *pushSubscriptionRepository) FindSubscriptionsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.PushSubscription, error) {
	return repo.findSubscriptions(ctx, "order_id = ?", orderID)
}

// FindSubscriptionsByUser retrieves subscriptions owned by a user.
func (repo *pushSubscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	return repo.findSubscriptions(ctx, "user_id = ?", userID)
}

// FindSubscriptionsByStoreAndRole retrieves store-scoped subscriptions limited to a role.
func (repo *pushSubscriptionRepository) FindSubscriptionsByStoreAndRole(ctx context.Context, storeID uuid.UUID, role entity.Role) ([]*entity.PushSubscription, error) {
	return repo.findSubscriptions(ctx, "store_id = ? AND role = ?", storeID, role.String())
}

// FindSubscriptionsByStore retrieves every subscription scoped to a store.
func (repo *pushSubscriptionRepository) FindSubscriptionsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.PushSubscription, error) {
	return repo.findSubscriptions(ctx, "store_id = ?", storeID)
}

func (repo *pushSubscriptionRepository) findSubscriptions(ctx context.Context, query string, args ...any) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		StoreID:   data.StoreID,
		OrderID:   data.OrderID,
		Endpoint:  data.Endpoint,
		P256dhKey: data.P256dhKey,
		AuthKey:   data.AuthKey,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain PushSubscription entity to a GORM PushSubscriptionModel.
func fromSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      data.Role.String(),
		StoreID:   data.StoreID,
		OrderID:   data.OrderID,
		Endpoint:  data.Endpoint,
		P256dhKey: data.P256dhKey,
		AuthKey:   data.AuthKey,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// CreateOffers persists one pending offer per eligible driver in a single batch.
func (repo *offerRepository) CreateOffers(ctx context.Context, offers []*entity.Offer) error {
	if len(offers) == 0 {
		return nil
	}

	offerModels := make([]*model.OfferModel, 0, len(offers))
	for _, offer := range offers {
		offerModels = append(offerModels, fromOfferDomain(offer))
	}

	if err := repo.db.WithContext(ctx).Create(&offerModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOfferCreationFailed.WrapMessage("invalid order or driver reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offers")
	}

	// Update the entities with generated values
	for i, offerM := range offerModels {
		offers[i].ID = offerM.ID
		offers[i].CreatedAt = offerM.CreatedAt
		offers[i].UpdatedAt = offerM.UpdatedAt
	}

	return nil
}

// CancelPendingOffersByOrder supersedes a prior broadcast in a single
// conditional update: every still-pending offer for the order becomes
// cancelled. A driver holding a stale offer is rejected by the acceptance
// resolver's own atomic check, not by this statement.
func (repo *offerRepository) CancelPendingOffersByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("order_id = ? AND status = ?", orderID, entity.OfferStatusPending.String()).
		Update("status", entity.OfferStatusCancelled.String())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to cancel pending offers")
	}

	return result.RowsAffected, nil
}

// FindOffersByOrder retrieves all offers for an order, newest first.
func (repo *offerRepository) FindOffersByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by order")
	}

	return toOfferDomainSlice(offerModels), nil
}

// ExpireOffersOlderThan marks pending offers created before the cutoff as expired.
func (repo *offerRepository) ExpireOffersOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("status = ? AND created_at < ?", entity.OfferStatusPending.String(), cutoff).
		Update("status", entity.OfferStatusExpired.String())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire stale offers")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:        data.ID,
		OrderID:   data.OrderID,
		DriverID:  data.DriverID,
		StoreID:   data.StoreID,
		Status:    entity.OfferStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOfferDomainSlice(data []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(data))
	for _, offerM := range data {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		DriverID:  data.DriverID,
		StoreID:   data.StoreID,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

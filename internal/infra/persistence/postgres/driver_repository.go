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
)

// driverRepository implements the repository.DriverRepository interface.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository is the constructor for driverRepository.
func NewDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &driverRepository{
		db: db,
	}
}

// FindEligibleDriversByStore retrieves drivers that can receive offers for the
// given store: registered to it, active, available, and reporting the
// "available" operational status.
func (repo *driverRepository) FindEligibleDriversByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.DriverProfile, error) {
	var driverModels []*model.DriverProfileModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ? AND available = ? AND status = ?",
			storeID, true, true, entity.DriverStatusAvailable).
		Order("name ASC").
		Find(&driverModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find eligible drivers by store")
	}

	drivers := make([]*entity.DriverProfile, 0, len(driverModels))
	for _, driverM := range driverModels {
		drivers = append(drivers, toDriverDomain(driverM))
	}

	return drivers, nil
}

// --- Mapper Functions ---

// toDriverDomain converts a GORM DriverProfileModel to a domain DriverProfile entity.
func toDriverDomain(data *model.DriverProfileModel) *entity.DriverProfile {
	if data == nil {
		return nil
	}

	return &entity.DriverProfile{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		IsActive:  data.IsActive,
		Available: data.Available,
		Status:    data.Status,
	}
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindStoreByID retrieves a store by its unique ID. The weekly schedule is
// decoded from JSONB and normalized so every day carries explicit hours.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM)
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) (*entity.Store, error) {
	if data == nil {
		return nil, nil
	}

	store := &entity.Store{
		ID:         data.ID,
		Name:       data.Name,
		ManualOpen: data.ManualOpen,
		Timezone:   data.Timezone,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if len(data.Schedule) > 0 {
		var schedule entity.WeeklySchedule
		if err := json.Unmarshal(data.Schedule, &schedule); err != nil {
			return nil, errors.Wrap(err, "failed to decode store schedule")
		}

		schedule.Normalize()
		store.Schedule = &schedule
	}

	return store, nil
}

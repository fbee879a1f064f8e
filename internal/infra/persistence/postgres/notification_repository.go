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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists one durable in-app notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.DriverNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create driver notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByDriver retrieves a driver's notifications with pagination, newest first.
func (repo *notificationRepository) FindNotificationsByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*entity.DriverNotification, error) {
	var notificationModels []*model.DriverNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by driver")
	}

	notifications := make([]*entity.DriverNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM DriverNotificationModel to a domain DriverNotification entity.
func toNotificationDomain(data *model.DriverNotificationModel) *entity.DriverNotification {
	if data == nil {
		return nil
	}

	return &entity.DriverNotification{
		ID:        data.ID,
		DriverID:  data.DriverID,
		OrderID:   data.OrderID,
		OfferID:   data.OfferID,
		Title:     data.Title,
		Body:      data.Body,
		Tag:       data.Tag,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain DriverNotification entity to a GORM DriverNotificationModel.
func fromNotificationDomain(data *entity.DriverNotification) *model.DriverNotificationModel {
	if data == nil {
		return nil
	}

	return &model.DriverNotificationModel{
		ID:        data.ID,
		DriverID:  data.DriverID,
		OrderID:   data.OrderID,
		OfferID:   data.OfferID,
		Title:     data.Title,
		Body:      data.Body,
		Tag:       data.Tag,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

package repository

import (
	"time"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	FindAll() ([]model.Notification, error)
	FindByID(id uuid.UUID) (*model.Notification, error)
	Create(notification *model.Notification) error
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) FindAll() ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Order("created_at DESC").Limit(200).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) FindByID(id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	return &notification, err
}

func (r *notificationRepo) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepo) MarkRead(id uuid.UUID) error {
	return r.db.Model(&model.Notification{}).
		Where("id = ?", id).
		Update("read_at", time.Now()).Error
}

func (r *notificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Notification{}, "id = ?", id).Error
}

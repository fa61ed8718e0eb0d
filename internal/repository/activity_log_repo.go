package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	FindAll(limit int) ([]model.ActivityLog, error)
	FindByID(id uuid.UUID) (*model.ActivityLog, error)
	Create(entry *model.ActivityLog) error
}

type activityLogRepo struct {
	db *gorm.DB
}

func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db}
}

func (r *activityLogRepo) FindAll(limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []model.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *activityLogRepo) FindByID(id uuid.UUID) (*model.ActivityLog, error) {
	var entry model.ActivityLog
	err := r.db.First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *activityLogRepo) Create(entry *model.ActivityLog) error {
	return r.db.Create(entry).Error
}

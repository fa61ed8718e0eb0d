package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchRepository interface {
	FindAll() ([]model.Batch, error)
	FindByID(id uuid.UUID) (*model.Batch, error)
	FindByBatchNumber(batchNumber string) (*model.Batch, error)
	Create(batch *model.Batch) error
	Update(batch *model.Batch) error
	Delete(id uuid.UUID) error
}

type batchRepo struct {
	db *gorm.DB
}

func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{db}
}

func (r *batchRepo) FindAll() ([]model.Batch, error) {
	var batches []model.Batch
	err := r.db.Preload("Product").Order("created_at DESC").Find(&batches).Error
	return batches, err
}

func (r *batchRepo) FindByID(id uuid.UUID) (*model.Batch, error) {
	var batch model.Batch
	err := r.db.Preload("Product").First(&batch, "id = ?", id).Error
	return &batch, err
}

func (r *batchRepo) FindByBatchNumber(batchNumber string) (*model.Batch, error) {
	var batch model.Batch
	err := r.db.First(&batch, "batch_number = ?", batchNumber).Error
	return &batch, err
}

func (r *batchRepo) Create(batch *model.Batch) error {
	return r.db.Create(batch).Error
}

func (r *batchRepo) Update(batch *model.Batch) error {
	return r.db.Save(batch).Error
}

func (r *batchRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Batch{}, "id = ?", id).Error
}

package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestSlipRepository interface {
	FindAll() ([]model.RequestSlip, error)
	FindByID(id uuid.UUID) (*model.RequestSlip, error)
	FindBySlipNumber(slipNumber string) (*model.RequestSlip, error)
	Create(tx *gorm.DB, slip *model.RequestSlip) error
	CreateItem(tx *gorm.DB, item *model.RequestSlipItem) error
	Update(slip *model.RequestSlip) error
	DeleteWithItems(tx *gorm.DB, id uuid.UUID) error
}

type requestSlipRepo struct {
	db *gorm.DB
}

func NewRequestSlipRepo(db *gorm.DB) RequestSlipRepository {
	return &requestSlipRepo{db}
}

func (r *requestSlipRepo) FindAll() ([]model.RequestSlip, error) {
	var slips []model.RequestSlip
	err := r.db.Preload("Items.Product").Order("created_at DESC").Find(&slips).Error
	return slips, err
}

func (r *requestSlipRepo) FindByID(id uuid.UUID) (*model.RequestSlip, error) {
	var slip model.RequestSlip
	err := r.db.Preload("Items.Product").First(&slip, "id = ?", id).Error
	return &slip, err
}

func (r *requestSlipRepo) FindBySlipNumber(slipNumber string) (*model.RequestSlip, error) {
	var slip model.RequestSlip
	err := r.db.First(&slip, "slip_number = ?", slipNumber).Error
	return &slip, err
}

func (r *requestSlipRepo) Create(tx *gorm.DB, slip *model.RequestSlip) error {
	return tx.Create(slip).Error
}

func (r *requestSlipRepo) CreateItem(tx *gorm.DB, item *model.RequestSlipItem) error {
	return tx.Create(item).Error
}

func (r *requestSlipRepo) Update(slip *model.RequestSlip) error {
	return r.db.Save(slip).Error
}

func (r *requestSlipRepo) DeleteWithItems(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.RequestSlipItem{}, "request_slip_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.RequestSlip{}, "id = ?", id).Error
}

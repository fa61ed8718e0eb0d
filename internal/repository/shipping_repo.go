package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShippingRepository interface {
	FindAll() ([]model.Shipping, error)
	FindByID(id uuid.UUID) (*model.Shipping, error)
	Create(shipping *model.Shipping) error
	Update(shipping *model.Shipping) error
	Delete(id uuid.UUID) error
}

type shippingRepo struct {
	db *gorm.DB
}

func NewShippingRepo(db *gorm.DB) ShippingRepository {
	return &shippingRepo{db}
}

func (r *shippingRepo) FindAll() ([]model.Shipping, error) {
	var shipments []model.Shipping
	err := r.db.Preload("SalesOrder").Preload("Customer").
		Order("created_at DESC").Find(&shipments).Error
	return shipments, err
}

func (r *shippingRepo) FindByID(id uuid.UUID) (*model.Shipping, error) {
	var shipping model.Shipping
	err := r.db.Preload("SalesOrder").Preload("Customer").
		First(&shipping, "id = ?", id).Error
	return &shipping, err
}

func (r *shippingRepo) Create(shipping *model.Shipping) error {
	return r.db.Create(shipping).Error
}

func (r *shippingRepo) Update(shipping *model.Shipping) error {
	return r.db.Save(shipping).Error
}

func (r *shippingRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Shipping{}, "id = ?", id).Error
}

package repository

import (
	"errors"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a guarded decrement would push
// current_stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock remaining")

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindActive() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID, deletedBy string) error
	IncrementStock(tx *gorm.DB, id uuid.UUID, delta int, updatedBy string) error
	DecrementStock(tx *gorm.DB, id uuid.UUID, delta int, updatedBy string) error
	CountLowStock() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindActive() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Product{}).Where("id = ?", id).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// IncrementStock runs inside the caller's transaction. The counter update is a
// single SQL expression so concurrent receipts for the same product never lose
// an update.
func (r *productRepo) IncrementStock(tx *gorm.DB, id uuid.UUID, delta int, updatedBy string) error {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_stock": gorm.Expr("current_stock + ?", delta),
			"updated_by":    updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock refuses to take the counter below zero. The floor check is in
// the WHERE clause, so it holds under concurrent issuances.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, delta int, updatedBy string) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND current_stock >= ?", id, delta).
		Updates(map[string]interface{}{
			"current_stock": gorm.Expr("current_stock - ?", delta),
			"updated_by":    updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("current_stock <= reorder_level").
		Count(&count).Error
	return count, err
}

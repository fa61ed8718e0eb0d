package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockInRepository interface {
	FindAll() ([]model.StockIn, error)
	FindByID(id uuid.UUID) (*model.StockIn, error)
	FindByReference(ref string) (*model.StockIn, error)
	Create(tx *gorm.DB, stockIn *model.StockIn) error
	CreateItem(tx *gorm.DB, item *model.StockInItem) error
	Update(stockIn *model.StockIn) error
	DeleteWithItems(tx *gorm.DB, id uuid.UUID) error
}

type stockInRepo struct {
	db *gorm.DB
}

func NewStockInRepo(db *gorm.DB) StockInRepository {
	return &stockInRepo{db}
}

func (r *stockInRepo) FindAll() ([]model.StockIn, error) {
	var records []model.StockIn
	err := r.db.Preload("PurchaseOrder").Preload("Batch").
		Preload("Items.Product").
		Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *stockInRepo) FindByID(id uuid.UUID) (*model.StockIn, error) {
	var record model.StockIn
	err := r.db.Preload("PurchaseOrder").Preload("Batch").
		Preload("Items.Product").
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *stockInRepo) FindByReference(ref string) (*model.StockIn, error) {
	var record model.StockIn
	err := r.db.First(&record, "reference_number = ?", ref).Error
	return &record, err
}

func (r *stockInRepo) Create(tx *gorm.DB, stockIn *model.StockIn) error {
	return tx.Create(stockIn).Error
}

func (r *stockInRepo) CreateItem(tx *gorm.DB, item *model.StockInItem) error {
	return tx.Create(item).Error
}

func (r *stockInRepo) Update(stockIn *model.StockIn) error {
	return r.db.Save(stockIn).Error
}

// DeleteWithItems removes the items before the parent record. Runs inside the
// caller's transaction.
func (r *stockInRepo) DeleteWithItems(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.StockInItem{}, "stock_in_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.StockIn{}, "id = ?", id).Error
}

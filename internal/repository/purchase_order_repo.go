package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	FindAll() ([]model.PurchaseOrder, error)
	FindByID(id uuid.UUID) (*model.PurchaseOrder, error)
	FindByOrderNumber(orderNumber string) (*model.PurchaseOrder, error)
	FindOpenOrders() ([]model.PurchaseOrder, error)
	Create(tx *gorm.DB, order *model.PurchaseOrder) error
	CreateItem(tx *gorm.DB, item *model.PurchaseOrderItem) error
	Update(order *model.PurchaseOrder) error
	DeleteWithItems(tx *gorm.DB, id uuid.UUID) error
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db}
}

func (r *purchaseOrderRepo) FindAll() ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items.Product").
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) FindByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items.Product").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *purchaseOrderRepo) FindByOrderNumber(orderNumber string) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items.Product").
		First(&order, "order_number = ?", orderNumber).Error
	return &order, err
}

// FindOpenOrders returns non-cancelled orders for the receiving dropdown.
func (r *purchaseOrderRepo) FindOpenOrders() ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.Preload("Supplier").
		Where("status <> ?", model.POCancelled).
		Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) Create(tx *gorm.DB, order *model.PurchaseOrder) error {
	return tx.Create(order).Error
}

func (r *purchaseOrderRepo) CreateItem(tx *gorm.DB, item *model.PurchaseOrderItem) error {
	return tx.Create(item).Error
}

func (r *purchaseOrderRepo) Update(order *model.PurchaseOrder) error {
	return r.db.Save(order).Error
}

func (r *purchaseOrderRepo) DeleteWithItems(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.PurchaseOrderItem{}, "purchase_order_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.PurchaseOrder{}, "id = ?", id).Error
}

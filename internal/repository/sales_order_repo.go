package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalesOrderRepository interface {
	FindAll() ([]model.SalesOrder, error)
	FindByID(id uuid.UUID) (*model.SalesOrder, error)
	FindByOrderNumber(orderNumber string) (*model.SalesOrder, error)
	Create(tx *gorm.DB, order *model.SalesOrder) error
	CreateItem(tx *gorm.DB, item *model.SalesOrderItem) error
	Update(order *model.SalesOrder) error
	DeleteWithItems(tx *gorm.DB, id uuid.UUID) error
}

type salesOrderRepo struct {
	db *gorm.DB
}

func NewSalesOrderRepo(db *gorm.DB) SalesOrderRepository {
	return &salesOrderRepo{db}
}

func (r *salesOrderRepo) FindAll() ([]model.SalesOrder, error) {
	var orders []model.SalesOrder
	err := r.db.Preload("Customer").Preload("Items.Product").
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *salesOrderRepo) FindByID(id uuid.UUID) (*model.SalesOrder, error) {
	var order model.SalesOrder
	err := r.db.Preload("Customer").Preload("Items.Product").Preload("Shippings").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *salesOrderRepo) FindByOrderNumber(orderNumber string) (*model.SalesOrder, error) {
	var order model.SalesOrder
	err := r.db.First(&order, "order_number = ?", orderNumber).Error
	return &order, err
}

func (r *salesOrderRepo) Create(tx *gorm.DB, order *model.SalesOrder) error {
	return tx.Create(order).Error
}

func (r *salesOrderRepo) CreateItem(tx *gorm.DB, item *model.SalesOrderItem) error {
	return tx.Create(item).Error
}

func (r *salesOrderRepo) Update(order *model.SalesOrder) error {
	return r.db.Save(order).Error
}

func (r *salesOrderRepo) DeleteWithItems(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.SalesOrderItem{}, "sales_order_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.SalesOrder{}, "id = ?", id).Error
}

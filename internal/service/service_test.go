package service

import (
	"testing"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Category{}, &model.Product{}, &model.Batch{},
		&model.Supplier{}, &model.Customer{},
		&model.PurchaseOrder{}, &model.PurchaseOrderItem{},
		&model.StockIn{}, &model.StockInItem{},
		&model.SalesOrder{}, &model.SalesOrderItem{},
		&model.Shipping{},
		&model.Notification{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku string, stock, reorderLevel int) *model.Product {
	t.Helper()
	product := &model.Product{
		SKU:          sku,
		Name:         "Product " + sku,
		CurrentStock: stock,
		ReorderLevel: reorderLevel,
		CostPrice:    decimal.NewFromInt(10),
		SellingPrice: decimal.NewFromInt(15),
		Unit:         "pcs",
		IsActive:     true,
	}
	require.NoError(t, repository.NewProductRepo(db).Create(product))
	return product
}

func seedSupplier(t *testing.T, db *gorm.DB) *model.Supplier {
	t.Helper()
	supplier := &model.Supplier{CompanyName: "Acme Trading"}
	require.NoError(t, repository.NewSupplierRepo(db).Create(supplier))
	return supplier
}

func seedCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()
	customer := &model.Customer{Name: "Jordan Cruz"}
	require.NoError(t, repository.NewCustomerRepo(db).Create(customer))
	return customer
}

func currentStock(t *testing.T, db *gorm.DB, product *model.Product) int {
	t.Helper()
	fresh, err := repository.NewProductRepo(db).FindByID(product.ID)
	require.NoError(t, err)
	return fresh.CurrentStock
}

func receiptDate() time.Time {
	return time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
}

package service

import (
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStockInService(db *gorm.DB) StockInService {
	return NewStockInService(
		repository.NewStockInRepo(db),
		repository.NewProductRepo(db),
		repository.NewPurchaseOrderRepo(db),
		repository.NewBatchRepo(db),
		db,
		nil,
	)
}

func stockInPayload(ref string, productID uuid.UUID, qty int) *model.StockIn {
	return &model.StockIn{
		ReferenceNumber: ref,
		ReceiptDate:     receiptDate(),
		ReceivedBy:      "warehouse@example.com",
		Status:          model.StockInReceived,
		Items: []model.StockInItem{
			{
				ProductID: productID,
				Quantity:  qty,
				UnitCost:  decimal.NewFromInt(10),
				TotalCost: decimal.NewFromInt(10).Mul(decimal.NewFromInt(int64(qty))),
			},
		},
	}
}

func TestStockInCreateIncrementsStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 10, 5)

	record, err := svc.Create(stockInPayload("SI-001", product.ID, 7), "tester")
	require.NoError(t, err)

	assert.Equal(t, 17, currentStock(t, db, product))
	require.Len(t, record.Items, 1)
	assert.Equal(t, 7, record.Items[0].Quantity)
}

func TestStockInCreateMultipleItemsSameProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 0, 0)

	payload := stockInPayload("SI-001", product.ID, 3)
	payload.Items = append(payload.Items, model.StockInItem{
		ProductID: product.ID,
		Quantity:  4,
		UnitCost:  decimal.NewFromInt(10),
		TotalCost: decimal.NewFromInt(40),
	})

	_, err := svc.Create(payload, "tester")
	require.NoError(t, err)
	assert.Equal(t, 7, currentStock(t, db, product))
}

func TestStockInCreateDuplicateReference(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 0, 0)

	_, err := svc.Create(stockInPayload("SI-001", product.ID, 5), "tester")
	require.NoError(t, err)

	_, err = svc.Create(stockInPayload("SI-001", product.ID, 5), "tester")
	ve, isValidation := AsValidationError(err)
	require.True(t, isValidation)
	assert.Contains(t, ve.Fields, "reference_number")

	// The failed attempt wrote nothing.
	assert.Equal(t, 5, currentStock(t, db, product))
}

func TestStockInCreateUnknownProductRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 0, 0)

	payload := stockInPayload("SI-001", product.ID, 5)
	payload.Items = append(payload.Items, model.StockInItem{
		ProductID: uuid.New(),
		Quantity:  2,
		UnitCost:  decimal.NewFromInt(10),
		TotalCost: decimal.NewFromInt(20),
	})

	_, err := svc.Create(payload, "tester")
	ve, isValidation := AsValidationError(err)
	require.True(t, isValidation)
	assert.Contains(t, ve.Fields, "items.1.product_id")

	assert.Equal(t, 0, currentStock(t, db, product))
	var count int64
	db.Model(&model.StockIn{}).Count(&count)
	assert.Zero(t, count)
}

func TestStockInCreateRejectsEmptyItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)

	payload := &model.StockIn{
		ReferenceNumber: "SI-001",
		ReceiptDate:     receiptDate(),
		ReceivedBy:      "warehouse@example.com",
		Status:          model.StockInReceived,
	}
	_, err := svc.Create(payload, "tester")
	ve, isValidation := AsValidationError(err)
	require.True(t, isValidation)
	assert.Contains(t, ve.Fields, "items")
}

func TestStockInDeleteReversesStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 10, 0)

	record, err := svc.Create(stockInPayload("SI-001", product.ID, 7), "tester")
	require.NoError(t, err)
	assert.Equal(t, 17, currentStock(t, db, product))

	require.NoError(t, svc.Delete(record.ID, "tester"))
	assert.Equal(t, 10, currentStock(t, db, product))

	// A second delete is a not found, never a second decrement.
	err = svc.Delete(record.ID, "tester")
	assert.ErrorIs(t, err, ErrStockInNotFound)
	assert.Equal(t, 10, currentStock(t, db, product))
}

func TestStockInDeleteRefusedWhenStockConsumed(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 0, 0)

	record, err := svc.Create(stockInPayload("SI-001", product.ID, 10), "tester")
	require.NoError(t, err)

	// Issue most of the received stock out from under the receipt.
	productRepo := repository.NewProductRepo(db)
	require.NoError(t, productRepo.DecrementStock(db, product.ID, 8, "tester"))

	err = svc.Delete(record.ID, "tester")
	assert.ErrorIs(t, err, ErrStockInConsumed)

	// Refusal left the receipt and the counter untouched.
	assert.Equal(t, 2, currentStock(t, db, product))
	_, err = svc.GetByID(record.ID)
	require.NoError(t, err)
}

func TestStockInUpdateHeaderOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockInService(db)
	product := seedProduct(t, db, "SKU-001", 0, 0)

	record, err := svc.Create(stockInPayload("SI-001", product.ID, 5), "tester")
	require.NoError(t, err)

	updated, err := svc.UpdateHeader(record.ID, &model.StockIn{
		Status: model.StockInVerified,
		Notes:  "counted twice",
	}, "verifier")
	require.NoError(t, err)
	assert.Equal(t, model.StockInVerified, updated.Status)
	assert.Equal(t, "counted twice", updated.Notes)

	// Items and the counter are untouched by header updates.
	assert.Equal(t, 5, currentStock(t, db, product))
}

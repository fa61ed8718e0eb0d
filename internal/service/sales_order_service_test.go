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

func newSalesOrderService(db *gorm.DB) SalesOrderService {
	return NewSalesOrderService(
		repository.NewSalesOrderRepo(db),
		repository.NewProductRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewNotificationRepo(db),
		db,
		nil,
	)
}

func salesOrderPayload(orderNumber string, customerID, productID uuid.UUID, qty int) *model.SalesOrder {
	return &model.SalesOrder{
		CustomerID:    customerID,
		OrderNumber:   orderNumber,
		OrderDate:     receiptDate(),
		Status:        model.SOPending,
		PaymentStatus: "pending",
		Items: []model.SalesOrderItem{
			{
				ProductID:  productID,
				Quantity:   qty,
				UnitPrice:  decimal.NewFromInt(15),
				TotalPrice: decimal.NewFromInt(15).Mul(decimal.NewFromInt(int64(qty))),
			},
		},
	}
}

func TestSalesOrderCreateIssuesStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newSalesOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-001", 10, 2)

	order, err := svc.Create(salesOrderPayload("SO-001", customer.ID, product.ID, 4), "tester")
	require.NoError(t, err)

	assert.Equal(t, 6, currentStock(t, db, product))
	require.Len(t, order.Items, 1)
}

func TestSalesOrderCreateOverdrawRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newSalesOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-001", 3, 0)

	_, err := svc.Create(salesOrderPayload("SO-001", customer.ID, product.ID, 5), "tester")
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	// Nothing landed: counter intact, no order, no items.
	assert.Equal(t, 3, currentStock(t, db, product))
	var orders, items int64
	db.Model(&model.SalesOrder{}).Count(&orders)
	db.Model(&model.SalesOrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestSalesOrderCreatePartialOverdrawRollsBackAllLines(t *testing.T) {
	db := setupTestDB(t)
	svc := newSalesOrderService(db)
	customer := seedCustomer(t, db)
	plenty := seedProduct(t, db, "SKU-001", 100, 0)
	scarce := seedProduct(t, db, "SKU-002", 1, 0)

	payload := salesOrderPayload("SO-001", customer.ID, plenty.ID, 10)
	payload.Items = append(payload.Items, model.SalesOrderItem{
		ProductID:  scarce.ID,
		Quantity:   5,
		UnitPrice:  decimal.NewFromInt(15),
		TotalPrice: decimal.NewFromInt(75),
	})

	_, err := svc.Create(payload, "tester")
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	// The line that would have succeeded was rolled back with the rest.
	assert.Equal(t, 100, currentStock(t, db, plenty))
	assert.Equal(t, 1, currentStock(t, db, scarce))
}

func TestSalesOrderCreateUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc := newSalesOrderService(db)
	product := seedProduct(t, db, "SKU-001", 10, 0)

	_, err := svc.Create(salesOrderPayload("SO-001", uuid.New(), product.ID, 1), "tester")
	ve, isValidation := AsValidationError(err)
	require.True(t, isValidation)
	assert.Contains(t, ve.Fields, "customer_id")
	assert.Equal(t, 10, currentStock(t, db, product))
}

func TestSalesOrderDeleteRestoresStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newSalesOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-001", 10, 0)

	order, err := svc.Create(salesOrderPayload("SO-001", customer.ID, product.ID, 4), "tester")
	require.NoError(t, err)
	assert.Equal(t, 6, currentStock(t, db, product))

	require.NoError(t, svc.Delete(order.ID, "tester"))
	assert.Equal(t, 10, currentStock(t, db, product))

	err = svc.Delete(order.ID, "tester")
	assert.ErrorIs(t, err, ErrSalesOrderNotFound)
}

func TestSalesOrderStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := newSalesOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-001", 10, 0)

	order, err := svc.Create(salesOrderPayload("SO-001", customer.ID, product.ID, 1), "tester")
	require.NoError(t, err)

	// pending -> shipped skips confirmation and is refused.
	_, err = svc.Update(order.ID, &model.SalesOrder{Status: model.SOShipped}, "tester")
	_, isValidation := AsValidationError(err)
	assert.True(t, isValidation)

	updated, err := svc.Update(order.ID, &model.SalesOrder{Status: model.SOConfirmed}, "tester")
	require.NoError(t, err)
	assert.Equal(t, model.SOConfirmed, updated.Status)
}

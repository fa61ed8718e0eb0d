package service

import (
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPurchaseOrderNotFound = errors.New("purchase order not found")

type PurchaseOrderService interface {
	GetAll() ([]model.PurchaseOrder, error)
	GetByID(id uuid.UUID) (*model.PurchaseOrder, error)
	GetByOrderNumber(orderNumber string) (*model.PurchaseOrder, error)
	GetOpenOrders() ([]model.PurchaseOrder, error)
	Create(order *model.PurchaseOrder, userID string) (*model.PurchaseOrder, error)
	Update(id uuid.UUID, patch *model.PurchaseOrder, userID string) (*model.PurchaseOrder, error)
	Delete(id uuid.UUID) error
}

type purchaseOrderService struct {
	poRepo       repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	db           *gorm.DB
}

func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	db *gorm.DB,
) PurchaseOrderService {
	return &purchaseOrderService{
		poRepo:       poRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		db:           db,
	}
}

func (s *purchaseOrderService) GetAll() ([]model.PurchaseOrder, error) {
	return s.poRepo.FindAll()
}

func (s *purchaseOrderService) GetByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	order, err := s.poRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPurchaseOrderNotFound
	}
	return order, err
}

func (s *purchaseOrderService) GetByOrderNumber(orderNumber string) (*model.PurchaseOrder, error) {
	order, err := s.poRepo.FindByOrderNumber(orderNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPurchaseOrderNotFound
	}
	return order, err
}

func (s *purchaseOrderService) GetOpenOrders() ([]model.PurchaseOrder, error) {
	return s.poRepo.FindOpenOrders()
}

func (s *purchaseOrderService) validateCreate(order *model.PurchaseOrder) error {
	fields := map[string]string{}

	if errs := validator.ValidateStruct(order); len(errs) > 0 {
		for k, v := range validator.ErrorMap(errs) {
			fields[k] = v
		}
	}
	if len(order.Items) == 0 {
		fields["items"] = "at least one item is required"
	}
	for i, item := range order.Items {
		if errs := validator.ValidateStruct(&item); len(errs) > 0 {
			for k, v := range validator.ErrorMap(errs) {
				fields[fmt.Sprintf("items.%d.%s", i, k)] = v
			}
		}
		if item.UnitPrice.IsNegative() {
			fields[fmt.Sprintf("items.%d.unit_price", i)] = "must not be negative"
		}
	}
	if order.Subtotal.IsNegative() || order.TaxAmount.IsNegative() ||
		order.DiscountAmount.IsNegative() || order.TotalAmount.IsNegative() {
		fields["total_amount"] = "monetary amounts must not be negative"
	}
	if order.ExpectedDeliveryDate != nil && order.ExpectedDeliveryDate.Before(order.OrderDate) {
		fields["expected_delivery_date"] = "must not be before order date"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if existing, err := s.poRepo.FindByOrderNumber(order.OrderNumber); err == nil && existing.ID != uuid.Nil {
		return NewValidationError("order_number", "already exists")
	}
	if _, err := s.supplierRepo.FindByID(order.SupplierID); err != nil {
		return NewValidationError("supplier_id", "supplier does not exist")
	}
	for i, item := range order.Items {
		if _, err := s.productRepo.FindByID(item.ProductID); err != nil {
			return NewValidationError(fmt.Sprintf("items.%d.product_id", i), "product does not exist")
		}
	}
	return nil
}

// Create persists the order and its line items in one transaction. Ordering
// has no stock effect; stock moves on receipt.
func (s *purchaseOrderService) Create(order *model.PurchaseOrder, userID string) (*model.PurchaseOrder, error) {
	if err := s.validateCreate(order); err != nil {
		return nil, err
	}

	order.CreatedBy = userID
	order.UpdatedBy = userID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := s.poRepo.Create(tx, order); err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = order.ID
			items[i].CreatedBy = userID
			items[i].UpdatedBy = userID
			if err := s.poRepo.CreateItem(tx, &items[i]); err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.poRepo.FindByID(order.ID)
}

// Update patches header fields. Status changes go through the transition
// table; line items are immutable once the order exists.
func (s *purchaseOrderService) Update(id uuid.UUID, patch *model.PurchaseOrder, userID string) (*model.PurchaseOrder, error) {
	order, err := s.poRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPurchaseOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != "" && patch.Status != order.Status {
		if !order.Status.CanTransitionTo(patch.Status) {
			return nil, NewValidationError("status",
				fmt.Sprintf("cannot transition from %s to %s", order.Status, patch.Status))
		}
		order.Status = patch.Status
	}
	if patch.PaymentStatus != "" {
		order.PaymentStatus = patch.PaymentStatus
	}
	if patch.PaymentTerms != "" {
		order.PaymentTerms = patch.PaymentTerms
	}
	if patch.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = patch.ExpectedDeliveryDate
	}
	if patch.Notes != "" {
		order.Notes = patch.Notes
	}
	if patch.DeliveryAddress != "" {
		order.DeliveryAddress = patch.DeliveryAddress
	}
	order.UpdatedBy = userID

	if err := s.poRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *purchaseOrderService) Delete(id uuid.UUID) error {
	if _, err := s.poRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPurchaseOrderNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.poRepo.DeleteWithItems(tx, id)
	})
}

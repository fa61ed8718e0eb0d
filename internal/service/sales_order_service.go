package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSalesOrderNotFound = errors.New("sales order not found")

type SalesOrderService interface {
	GetAll() ([]model.SalesOrder, error)
	GetByID(id uuid.UUID) (*model.SalesOrder, error)
	Create(order *model.SalesOrder, userID string) (*model.SalesOrder, error)
	Update(id uuid.UUID, patch *model.SalesOrder, userID string) (*model.SalesOrder, error)
	Delete(id uuid.UUID, userID string) error
}

type salesOrderService struct {
	soRepo       repository.SalesOrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	notifRepo    repository.NotificationRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewSalesOrderService(
	soRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	notifRepo repository.NotificationRepository,
	db *gorm.DB,
	hub *ws.Hub,
) SalesOrderService {
	return &salesOrderService{
		soRepo:       soRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		notifRepo:    notifRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *salesOrderService) GetAll() ([]model.SalesOrder, error) {
	return s.soRepo.FindAll()
}

func (s *salesOrderService) GetByID(id uuid.UUID) (*model.SalesOrder, error) {
	order, err := s.soRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSalesOrderNotFound
	}
	return order, err
}

func (s *salesOrderService) validateCreate(order *model.SalesOrder) error {
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
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if existing, err := s.soRepo.FindByOrderNumber(order.OrderNumber); err == nil && existing.ID != uuid.Nil {
		return NewValidationError("order_number", "already exists")
	}
	if _, err := s.customerRepo.FindByID(order.CustomerID); err != nil {
		return NewValidationError("customer_id", "customer does not exist")
	}
	for i, item := range order.Items {
		if _, err := s.productRepo.FindByID(item.ProductID); err != nil {
			return NewValidationError(fmt.Sprintf("items.%d.product_id", i), "product does not exist")
		}
	}
	return nil
}

// Create persists the order and issues stock in one transaction. The guarded
// decrement keeps current_stock non-negative under concurrent issuances; an
// overdraw on any line rolls the whole order back.
func (s *salesOrderService) Create(order *model.SalesOrder, userID string) (*model.SalesOrder, error) {
	if err := s.validateCreate(order); err != nil {
		return nil, err
	}

	order.CreatedBy = userID
	order.UpdatedBy = userID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := s.soRepo.Create(tx, order); err != nil {
			return err
		}
		for i := range items {
			items[i].SalesOrderID = order.ID
			items[i].CreatedBy = userID
			items[i].UpdatedBy = userID
			if err := s.soRepo.CreateItem(tx, &items[i]); err != nil {
				return err
			}
		}
		for i := range items {
			if err := s.productRepo.DecrementStock(tx, items[i].ProductID, items[i].Quantity, userID); err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.notifyLowStock(order.Items)

	return s.soRepo.FindByID(order.ID)
}

func (s *salesOrderService) Update(id uuid.UUID, patch *model.SalesOrder, userID string) (*model.SalesOrder, error) {
	order, err := s.soRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSalesOrderNotFound
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
	if patch.PaymentMethod != "" {
		order.PaymentMethod = patch.PaymentMethod
	}
	if patch.DeliveryDate != nil {
		order.DeliveryDate = patch.DeliveryDate
	}
	if patch.Notes != "" {
		order.Notes = patch.Notes
	}
	if patch.ShippingAddress != "" {
		order.ShippingAddress = patch.ShippingAddress
	}
	order.UpdatedBy = userID

	if err := s.soRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete restores the issued stock, then removes items and order atomically.
func (s *salesOrderService) Delete(id uuid.UUID, userID string) error {
	order, err := s.soRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSalesOrderNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := s.productRepo.IncrementStock(tx, item.ProductID, item.Quantity, userID); err != nil {
				return err
			}
		}
		return s.soRepo.DeleteWithItems(tx, order.ID)
	})
}

// notifyLowStock persists a low-stock notification and broadcasts it when an
// issuance drops a product to or under its reorder level.
func (s *salesOrderService) notifyLowStock(items []model.SalesOrderItem) {
	for _, item := range items {
		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil || !product.IsLowStock() {
			continue
		}

		notif := &model.Notification{
			Type:     "low_stock",
			Title:    fmt.Sprintf("Low stock: %s", product.Name),
			Message:  fmt.Sprintf("%s (%s) is at %d units, reorder level %d", product.Name, product.SKU, product.CurrentStock, product.ReorderLevel),
			Priority: "high",
		}
		if err := s.notifRepo.Create(notif); err != nil {
			continue
		}

		if s.wsHub != nil {
			payload := map[string]interface{}{
				"type":   "notification",
				"action": "low_stock",
				"product": map[string]interface{}{
					"id":            product.ID,
					"sku":           product.SKU,
					"name":          product.Name,
					"current_stock": product.CurrentStock,
					"reorder_level": product.ReorderLevel,
				},
				"message": notif.Message,
			}
			msg, _ := json.Marshal(payload)
			s.wsHub.Broadcast <- msg
		}
	}
}

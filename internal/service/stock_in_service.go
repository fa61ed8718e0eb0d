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

var (
	ErrStockInNotFound = errors.New("stock in record not found")
	ErrStockInConsumed = errors.New("stock already consumed, cannot reverse receipt")
)

type StockInService interface {
	GetAll() ([]model.StockIn, error)
	GetByID(id uuid.UUID) (*model.StockIn, error)
	Create(record *model.StockIn, userID string) (*model.StockIn, error)
	UpdateHeader(id uuid.UUID, record *model.StockIn, userID string) (*model.StockIn, error)
	Delete(id uuid.UUID, userID string) error
}

type stockInService struct {
	stockInRepo repository.StockInRepository
	productRepo repository.ProductRepository
	poRepo      repository.PurchaseOrderRepository
	batchRepo   repository.BatchRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewStockInService(
	sRepo repository.StockInRepository,
	pRepo repository.ProductRepository,
	poRepo repository.PurchaseOrderRepository,
	bRepo repository.BatchRepository,
	db *gorm.DB,
	hub *ws.Hub,
) StockInService {
	return &stockInService{
		stockInRepo: sRepo,
		productRepo: pRepo,
		poRepo:      poRepo,
		batchRepo:   bRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *stockInService) GetAll() ([]model.StockIn, error) {
	return s.stockInRepo.FindAll()
}

func (s *stockInService) GetByID(id uuid.UUID) (*model.StockIn, error) {
	record, err := s.stockInRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStockInNotFound
	}
	return record, err
}

// validateCreate checks the whole payload before any write. It returns a
// field-keyed *ValidationError so the handler can answer 422.
func (s *stockInService) validateCreate(record *model.StockIn) error {
	fields := map[string]string{}

	if errs := validator.ValidateStruct(record); len(errs) > 0 {
		for k, v := range validator.ErrorMap(errs) {
			fields[k] = v
		}
	}
	if len(record.Items) == 0 {
		fields["items"] = "at least one item is required"
	}
	for i, item := range record.Items {
		if errs := validator.ValidateStruct(&item); len(errs) > 0 {
			for k, v := range validator.ErrorMap(errs) {
				fields[fmt.Sprintf("items.%d.%s", i, k)] = v
			}
		}
		if item.UnitCost.IsNegative() || item.TotalCost.IsNegative() {
			fields[fmt.Sprintf("items.%d.unit_cost", i)] = "must not be negative"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	// Referential checks, still before any mutation.
	if existing, err := s.stockInRepo.FindByReference(record.ReferenceNumber); err == nil && existing.ID != uuid.Nil {
		return NewValidationError("reference_number", "already exists")
	}
	if record.PurchaseOrderID != nil {
		if _, err := s.poRepo.FindByID(*record.PurchaseOrderID); err != nil {
			return NewValidationError("purchase_order_id", "purchase order does not exist")
		}
	}
	if record.BatchID != nil {
		if _, err := s.batchRepo.FindByID(*record.BatchID); err != nil {
			return NewValidationError("batch_id", "batch does not exist")
		}
	}
	for i, item := range record.Items {
		if _, err := s.productRepo.FindByID(item.ProductID); err != nil {
			return NewValidationError(fmt.Sprintf("items.%d.product_id", i), "product does not exist")
		}
	}
	return nil
}

// Create persists the stock-in record, its items, and the matching product
// stock increments in one transaction. A failure at any point leaves the
// database untouched: no record without items, no items without counter
// increments.
func (s *stockInService) Create(record *model.StockIn, userID string) (*model.StockIn, error) {
	if err := s.validateCreate(record); err != nil {
		return nil, err
	}

	record.CreatedBy = userID
	record.UpdatedBy = userID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		items := record.Items
		record.Items = nil
		if err := s.stockInRepo.Create(tx, record); err != nil {
			return err
		}

		for i := range items {
			items[i].StockInID = record.ID
			items[i].CreatedBy = userID
			items[i].UpdatedBy = userID
			if err := s.stockInRepo.CreateItem(tx, &items[i]); err != nil {
				return err
			}
		}

		// Counter update is a single SQL expression, so concurrent receipts
		// for the same product both land.
		for i := range items {
			if err := s.productRepo.IncrementStock(tx, items[i].ProductID, items[i].Quantity, userID); err != nil {
				return err
			}
		}

		record.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, ferr := s.stockInRepo.FindByID(record.ID)
	if ferr != nil {
		return record, nil
	}

	go s.broadcastReceipt(created)

	return created, nil
}

// UpdateHeader updates the record's own fields only; items and stock counters
// are immutable after receipt.
func (s *stockInService) UpdateHeader(id uuid.UUID, patch *model.StockIn, userID string) (*model.StockIn, error) {
	record, err := s.stockInRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStockInNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != "" {
		if errs := validator.ValidateStruct(&model.StockIn{
			ReferenceNumber: record.ReferenceNumber,
			ReceiptDate:     record.ReceiptDate,
			ReceivedBy:      record.ReceivedBy,
			Status:          patch.Status,
		}); len(errs) > 0 {
			return nil, &ValidationError{Fields: validator.ErrorMap(errs)}
		}
		record.Status = patch.Status
	}
	if patch.ReceivedBy != "" {
		record.ReceivedBy = patch.ReceivedBy
	}
	if !patch.ReceiptDate.IsZero() {
		record.ReceiptDate = patch.ReceiptDate
	}
	if patch.Notes != "" {
		record.Notes = patch.Notes
	}
	record.UpdatedBy = userID

	if err := s.stockInRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete reverses the receipt: decrement each item's product stock, remove the
// items, remove the record, atomically. Deleting an already-deleted record is
// a not-found error, never a second decrement. The decrement is guarded, so a
// receipt whose stock has since been issued cannot be reversed into negative
// inventory.
func (s *stockInService) Delete(id uuid.UUID, userID string) error {
	record, err := s.stockInRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStockInNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range record.Items {
			if err := s.productRepo.DecrementStock(tx, item.ProductID, item.Quantity, userID); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return ErrStockInConsumed
				}
				return err
			}
		}
		return s.stockInRepo.DeleteWithItems(tx, record.ID)
	})
}

func (s *stockInService) broadcastReceipt(record *model.StockIn) {
	if s.wsHub == nil {
		return
	}
	totalQty := 0
	for _, item := range record.Items {
		totalQty += item.Quantity
	}
	payload := map[string]interface{}{
		"type":   "stock_update",
		"action": "stock_in_created",
		"stock_in": map[string]interface{}{
			"id":               record.ID,
			"reference_number": record.ReferenceNumber,
			"items":            len(record.Items),
			"total_quantity":   totalQty,
		},
		"message": fmt.Sprintf("Stock-in %s received (%d items, %d units)", record.ReferenceNumber, len(record.Items), totalQty),
	}
	msg, _ := json.Marshal(payload)
	s.wsHub.Broadcast <- msg
}

package service

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	GetAllProducts() ([]model.Product, error)
	GetActiveProducts() ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(product *model.Product, userID string) error
	UpdateProduct(id uuid.UUID, patch *model.Product, userID string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, userID string) error
	GetAllBatches() ([]model.Batch, error)
	CreateBatch(batch *model.Batch, userID string) error
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	batchRepo    repository.BatchRepository
	db           *gorm.DB
}

func NewInventoryService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	bRepo repository.BatchRepository,
	db *gorm.DB,
) InventoryService {
	return &inventoryService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		batchRepo:    bRepo,
		db:           db,
	}
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// GetActiveProducts backs the dropdowns used by order and receiving forms.
func (s *inventoryService) GetActiveProducts() ([]model.Product, error) {
	return s.productRepo.FindActive()
}

func (s *inventoryService) GetAllBatches() ([]model.Batch, error) {
	return s.batchRepo.FindAll()
}

func (s *inventoryService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *inventoryService) CreateProduct(product *model.Product, userID string) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	if product.CostPrice.IsNegative() || product.SellingPrice.IsNegative() {
		return NewValidationError("cost_price", "prices must not be negative")
	}

	existing, _ := s.productRepo.FindBySKU(product.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return NewValidationError("sku", "already exists")
	}
	if product.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*product.CategoryID); err != nil {
			return NewValidationError("category_id", "category does not exist")
		}
	}

	product.CreatedBy = userID
	product.UpdatedBy = userID
	return s.productRepo.Create(product)
}

// UpdateProduct changes descriptive fields. CurrentStock is deliberately not
// writable here; the counter moves only through receipts and issuances.
func (s *inventoryService) UpdateProduct(id uuid.UUID, patch *model.Product, userID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.SKU != "" && patch.SKU != product.SKU {
		existing, _ := s.productRepo.FindBySKU(patch.SKU)
		if existing != nil && existing.ID != uuid.Nil {
			return nil, NewValidationError("sku", "already exists")
		}
		product.SKU = patch.SKU
	}
	if patch.Name != "" {
		product.Name = patch.Name
	}
	if patch.Description != "" {
		product.Description = patch.Description
	}
	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*patch.CategoryID); err != nil {
			return nil, NewValidationError("category_id", "category does not exist")
		}
		product.CategoryID = patch.CategoryID
	}
	if !patch.CostPrice.IsZero() {
		if patch.CostPrice.IsNegative() {
			return nil, NewValidationError("cost_price", "must not be negative")
		}
		product.CostPrice = patch.CostPrice
	}
	if !patch.SellingPrice.IsZero() {
		if patch.SellingPrice.IsNegative() {
			return nil, NewValidationError("selling_price", "must not be negative")
		}
		product.SellingPrice = patch.SellingPrice
	}
	if patch.ReorderLevel > 0 {
		product.ReorderLevel = patch.ReorderLevel
	}
	if patch.Unit != "" {
		product.Unit = patch.Unit
	}
	if patch.Barcode != "" {
		product.Barcode = patch.Barcode
	}
	if patch.Brand != "" {
		product.Brand = patch.Brand
	}
	product.IsActive = patch.IsActive
	product.UpdatedBy = userID

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID, userID string) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(id, userID)
}

func (s *inventoryService) CreateBatch(batch *model.Batch, userID string) error {
	if errs := validator.ValidateStruct(batch); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	if !batch.DatesValid() {
		return NewValidationError("expiry_date", "must be after manufacturing date")
	}
	if _, err := s.productRepo.FindByID(batch.ProductID); err != nil {
		return NewValidationError("product_id", "product does not exist")
	}
	if existing, err := s.batchRepo.FindByBatchNumber(batch.BatchNumber); err == nil && existing.ID != uuid.Nil {
		return NewValidationError("batch_number", "already exists")
	}

	batch.CreatedBy = userID
	batch.UpdatedBy = userID
	return s.batchRepo.Create(batch)
}

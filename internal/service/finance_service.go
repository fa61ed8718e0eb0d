package service

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFinanceRecordNotFound = errors.New("finance record not found")

type FinanceService interface {
	GetAll() ([]model.FinanceRecord, error)
	GetByID(id uuid.UUID) (*model.FinanceRecord, error)
	Create(record *model.FinanceRecord, userID string) error
	Update(id uuid.UUID, patch *model.FinanceRecord, userID string) (*model.FinanceRecord, error)
	Delete(id uuid.UUID) error
}

type financeService struct {
	financeRepo repository.FinanceRepository
	soRepo      repository.SalesOrderRepository
	poRepo      repository.PurchaseOrderRepository
}

func NewFinanceService(
	financeRepo repository.FinanceRepository,
	soRepo repository.SalesOrderRepository,
	poRepo repository.PurchaseOrderRepository,
) FinanceService {
	return &financeService{
		financeRepo: financeRepo,
		soRepo:      soRepo,
		poRepo:      poRepo,
	}
}

func (s *financeService) GetAll() ([]model.FinanceRecord, error) {
	return s.financeRepo.FindAll()
}

func (s *financeService) GetByID(id uuid.UUID) (*model.FinanceRecord, error) {
	record, err := s.financeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFinanceRecordNotFound
	}
	return record, err
}

func (s *financeService) Create(record *model.FinanceRecord, userID string) error {
	if errs := validator.ValidateStruct(record); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	if record.Amount.IsNegative() {
		return NewValidationError("amount", "must not be negative")
	}
	if record.SalesOrderID != nil {
		if _, err := s.soRepo.FindByID(*record.SalesOrderID); err != nil {
			return NewValidationError("sales_order_id", "sales order does not exist")
		}
	}
	if record.PurchaseOrderID != nil {
		if _, err := s.poRepo.FindByID(*record.PurchaseOrderID); err != nil {
			return NewValidationError("purchase_order_id", "purchase order does not exist")
		}
	}

	record.CreatedBy = userID
	record.UpdatedBy = userID
	return s.financeRepo.Create(record)
}

func (s *financeService) Update(id uuid.UUID, patch *model.FinanceRecord, userID string) (*model.FinanceRecord, error) {
	record, err := s.financeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFinanceRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != "" {
		record.Status = patch.Status
	}
	if patch.PaymentMethod != "" {
		record.PaymentMethod = patch.PaymentMethod
	}
	if !patch.Amount.IsZero() {
		if patch.Amount.IsNegative() {
			return nil, NewValidationError("amount", "must not be negative")
		}
		record.Amount = patch.Amount
	}
	if !patch.TransactionDate.IsZero() {
		record.TransactionDate = patch.TransactionDate
	}
	if patch.ReferenceNumber != "" {
		record.ReferenceNumber = patch.ReferenceNumber
	}
	if patch.Description != "" {
		record.Description = patch.Description
	}
	if patch.Category != "" {
		record.Category = patch.Category
	}
	if patch.Notes != "" {
		record.Notes = patch.Notes
	}
	record.UpdatedBy = userID

	if err := s.financeRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *financeService) Delete(id uuid.UUID) error {
	if _, err := s.financeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFinanceRecordNotFound
		}
		return err
	}
	return s.financeRepo.Delete(id)
}

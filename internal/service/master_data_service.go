package service

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// MasterDataService covers the flat reference entities: categories, suppliers
// and customers. None of them touch stock counters.
type MasterDataService interface {
	GetCategories() ([]model.Category, error)
	CreateCategory(category *model.Category, userID string) error
	UpdateCategory(id uuid.UUID, patch *model.Category, userID string) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error

	GetSuppliers() ([]model.Supplier, error)
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	CreateSupplier(supplier *model.Supplier, userID string) error
	UpdateSupplier(id uuid.UUID, patch *model.Supplier, userID string) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error

	GetCustomers() ([]model.Customer, error)
	GetCustomer(id uuid.UUID) (*model.Customer, error)
	CreateCustomer(customer *model.Customer, userID string) error
	UpdateCustomer(id uuid.UUID, patch *model.Customer, userID string) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
}

type masterDataService struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
}

func NewMasterDataService(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
) MasterDataService {
	return &masterDataService{
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
	}
}

func (s *masterDataService) GetCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *masterDataService) CreateCategory(category *model.Category, userID string) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	category.CreatedBy = userID
	category.UpdatedBy = userID
	return s.categoryRepo.Create(category)
}

func (s *masterDataService) UpdateCategory(id uuid.UUID, patch *model.Category, userID string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		category.Name = patch.Name
	}
	if patch.Description != "" {
		category.Description = patch.Description
	}
	category.IsActive = patch.IsActive
	category.UpdatedBy = userID

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *masterDataService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *masterDataService) GetSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *masterDataService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSupplierNotFound
	}
	return supplier, err
}

func (s *masterDataService) CreateSupplier(supplier *model.Supplier, userID string) error {
	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	if supplier.CreditLimit.IsNegative() {
		return NewValidationError("credit_limit", "must not be negative")
	}
	supplier.CreatedBy = userID
	supplier.UpdatedBy = userID
	return s.supplierRepo.Create(supplier)
}

func (s *masterDataService) UpdateSupplier(id uuid.UUID, patch *model.Supplier, userID string) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.CompanyName != "" {
		supplier.CompanyName = patch.CompanyName
	}
	if patch.ContactPerson != "" {
		supplier.ContactPerson = patch.ContactPerson
	}
	if patch.Email != "" {
		supplier.Email = patch.Email
	}
	if patch.Phone != "" {
		supplier.Phone = patch.Phone
	}
	if patch.Address != "" {
		supplier.Address = patch.Address
	}
	if patch.City != "" {
		supplier.City = patch.City
	}
	if patch.Country != "" {
		supplier.Country = patch.Country
	}
	if patch.PaymentTerms != "" {
		supplier.PaymentTerms = patch.PaymentTerms
	}
	if !patch.CreditLimit.IsZero() {
		if patch.CreditLimit.IsNegative() {
			return nil, NewValidationError("credit_limit", "must not be negative")
		}
		supplier.CreditLimit = patch.CreditLimit
	}
	if patch.Notes != "" {
		supplier.Notes = patch.Notes
	}
	supplier.IsActive = patch.IsActive
	supplier.UpdatedBy = userID

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *masterDataService) DeleteSupplier(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return s.supplierRepo.Delete(id)
}

func (s *masterDataService) GetCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *masterDataService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	return customer, err
}

func (s *masterDataService) CreateCustomer(customer *model.Customer, userID string) error {
	if errs := validator.ValidateStruct(customer); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	if customer.CreditLimit.IsNegative() {
		return NewValidationError("credit_limit", "must not be negative")
	}
	customer.CreatedBy = userID
	customer.UpdatedBy = userID
	return s.customerRepo.Create(customer)
}

func (s *masterDataService) UpdateCustomer(id uuid.UUID, patch *model.Customer, userID string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		customer.Name = patch.Name
	}
	if patch.Email != "" {
		customer.Email = patch.Email
	}
	if patch.Phone != "" {
		customer.Phone = patch.Phone
	}
	if patch.Address != "" {
		customer.Address = patch.Address
	}
	if patch.City != "" {
		customer.City = patch.City
	}
	if patch.Country != "" {
		customer.Country = patch.Country
	}
	if patch.CustomerType != "" {
		customer.CustomerType = patch.CustomerType
	}
	if patch.BusinessName != "" {
		customer.BusinessName = patch.BusinessName
	}
	if patch.ContactPerson != "" {
		customer.ContactPerson = patch.ContactPerson
	}
	if !patch.CreditLimit.IsZero() {
		if patch.CreditLimit.IsNegative() {
			return nil, NewValidationError("credit_limit", "must not be negative")
		}
		customer.CreditLimit = patch.CreditLimit
	}
	if patch.PaymentTerms != "" {
		customer.PaymentTerms = patch.PaymentTerms
	}
	if patch.Notes != "" {
		customer.Notes = patch.Notes
	}
	customer.IsActive = patch.IsActive
	customer.UpdatedBy = userID

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *masterDataService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return s.customerRepo.Delete(id)
}

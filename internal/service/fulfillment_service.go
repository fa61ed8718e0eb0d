package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRequestSlipNotFound = errors.New("request slip not found")
	ErrShippingNotFound    = errors.New("shipping record not found")
)

// slipTransitions is the legal status table for request slips. A rejected or
// fulfilled slip is terminal.
var slipTransitions = map[model.RequestSlipStatus][]model.RequestSlipStatus{
	model.RequestSlipPending:   {model.RequestSlipApproved, model.RequestSlipRejected},
	model.RequestSlipApproved:  {model.RequestSlipFulfilled, model.RequestSlipRejected},
	model.RequestSlipRejected:  {},
	model.RequestSlipFulfilled: {},
}

// FulfillmentService covers internal request slips and outbound shipments.
// Neither moves stock directly; issuance happens on the sales order.
type FulfillmentService interface {
	GetRequestSlips() ([]model.RequestSlip, error)
	GetRequestSlip(id uuid.UUID) (*model.RequestSlip, error)
	CreateRequestSlip(slip *model.RequestSlip, userID string) (*model.RequestSlip, error)
	UpdateRequestSlipStatus(id uuid.UUID, status model.RequestSlipStatus, approver, userID string) (*model.RequestSlip, error)
	DeleteRequestSlip(id uuid.UUID) error

	GetShippings() ([]model.Shipping, error)
	GetShipping(id uuid.UUID) (*model.Shipping, error)
	CreateShipping(shipping *model.Shipping, userID string) error
	UpdateShipping(id uuid.UUID, patch *model.Shipping, userID string) (*model.Shipping, error)
	DeleteShipping(id uuid.UUID) error
}

type fulfillmentService struct {
	slipRepo     repository.RequestSlipRepository
	shippingRepo repository.ShippingRepository
	productRepo  repository.ProductRepository
	soRepo       repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	db           *gorm.DB
}

func NewFulfillmentService(
	slipRepo repository.RequestSlipRepository,
	shippingRepo repository.ShippingRepository,
	productRepo repository.ProductRepository,
	soRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	db *gorm.DB,
) FulfillmentService {
	return &fulfillmentService{
		slipRepo:     slipRepo,
		shippingRepo: shippingRepo,
		productRepo:  productRepo,
		soRepo:       soRepo,
		customerRepo: customerRepo,
		db:           db,
	}
}

func (s *fulfillmentService) GetRequestSlips() ([]model.RequestSlip, error) {
	return s.slipRepo.FindAll()
}

func (s *fulfillmentService) GetRequestSlip(id uuid.UUID) (*model.RequestSlip, error) {
	slip, err := s.slipRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestSlipNotFound
	}
	return slip, err
}

func (s *fulfillmentService) CreateRequestSlip(slip *model.RequestSlip, userID string) (*model.RequestSlip, error) {
	fields := map[string]string{}
	if errs := validator.ValidateStruct(slip); len(errs) > 0 {
		for k, v := range validator.ErrorMap(errs) {
			fields[k] = v
		}
	}
	if len(slip.Items) == 0 {
		fields["items"] = "at least one item is required"
	}
	for i, item := range slip.Items {
		if errs := validator.ValidateStruct(&item); len(errs) > 0 {
			for k, v := range validator.ErrorMap(errs) {
				fields[fmt.Sprintf("items.%d.%s", i, k)] = v
			}
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if existing, err := s.slipRepo.FindBySlipNumber(slip.SlipNumber); err == nil && existing.ID != uuid.Nil {
		return nil, NewValidationError("slip_number", "already exists")
	}
	for i, item := range slip.Items {
		if _, err := s.productRepo.FindByID(item.ProductID); err != nil {
			return nil, NewValidationError(fmt.Sprintf("items.%d.product_id", i), "product does not exist")
		}
	}

	slip.CreatedBy = userID
	slip.UpdatedBy = userID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		items := slip.Items
		slip.Items = nil
		if err := s.slipRepo.Create(tx, slip); err != nil {
			return err
		}
		for i := range items {
			items[i].RequestSlipID = slip.ID
			items[i].CreatedBy = userID
			items[i].UpdatedBy = userID
			if err := s.slipRepo.CreateItem(tx, &items[i]); err != nil {
				return err
			}
		}
		slip.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.slipRepo.FindByID(slip.ID)
}

// UpdateRequestSlipStatus drives the approve/reject/fulfill flow. Approval
// stamps the approver and date.
func (s *fulfillmentService) UpdateRequestSlipStatus(id uuid.UUID, status model.RequestSlipStatus, approver, userID string) (*model.RequestSlip, error) {
	slip, err := s.slipRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestSlipNotFound
	}
	if err != nil {
		return nil, err
	}

	if status != slip.Status {
		allowed := false
		for _, next := range slipTransitions[slip.Status] {
			if next == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, NewValidationError("status",
				fmt.Sprintf("cannot transition from %s to %s", slip.Status, status))
		}
		slip.Status = status
		if status == model.RequestSlipApproved {
			now := time.Now()
			slip.ApprovedBy = approver
			slip.ApprovedDate = &now
		}
	}
	slip.UpdatedBy = userID

	if err := s.slipRepo.Update(slip); err != nil {
		return nil, err
	}
	return slip, nil
}

func (s *fulfillmentService) DeleteRequestSlip(id uuid.UUID) error {
	if _, err := s.slipRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestSlipNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.slipRepo.DeleteWithItems(tx, id)
	})
}

func (s *fulfillmentService) GetShippings() ([]model.Shipping, error) {
	return s.shippingRepo.FindAll()
}

func (s *fulfillmentService) GetShipping(id uuid.UUID) (*model.Shipping, error) {
	shipping, err := s.shippingRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShippingNotFound
	}
	return shipping, err
}

func (s *fulfillmentService) CreateShipping(shipping *model.Shipping, userID string) error {
	if errs := validator.ValidateStruct(shipping); len(errs) > 0 {
		return &ValidationError{Fields: validator.ErrorMap(errs)}
	}
	if shipping.ShippingCost.IsNegative() {
		return NewValidationError("shipping_cost", "must not be negative")
	}
	if _, err := s.soRepo.FindByID(shipping.SalesOrderID); err != nil {
		return NewValidationError("sales_order_id", "sales order does not exist")
	}
	if _, err := s.customerRepo.FindByID(shipping.CustomerID); err != nil {
		return NewValidationError("customer_id", "customer does not exist")
	}

	shipping.CreatedBy = userID
	shipping.UpdatedBy = userID
	return s.shippingRepo.Create(shipping)
}

func (s *fulfillmentService) UpdateShipping(id uuid.UUID, patch *model.Shipping, userID string) (*model.Shipping, error) {
	shipping, err := s.shippingRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShippingNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != "" {
		shipping.Status = patch.Status
	}
	if patch.TrackingNumber != "" {
		shipping.TrackingNumber = patch.TrackingNumber
	}
	if patch.ShippingDate != nil {
		shipping.ShippingDate = patch.ShippingDate
	}
	if patch.ExpectedDeliveryDate != nil {
		shipping.ExpectedDeliveryDate = patch.ExpectedDeliveryDate
	}
	if patch.ShippingMethod != "" {
		shipping.ShippingMethod = patch.ShippingMethod
	}
	if patch.Carrier != "" {
		shipping.Carrier = patch.Carrier
	}
	if !patch.ShippingCost.IsZero() {
		if patch.ShippingCost.IsNegative() {
			return nil, NewValidationError("shipping_cost", "must not be negative")
		}
		shipping.ShippingCost = patch.ShippingCost
	}
	if patch.ShippingAddress != "" {
		shipping.ShippingAddress = patch.ShippingAddress
	}
	if patch.Notes != "" {
		shipping.Notes = patch.Notes
	}
	shipping.UpdatedBy = userID

	if err := s.shippingRepo.Update(shipping); err != nil {
		return nil, err
	}
	return shipping, nil
}

func (s *fulfillmentService) DeleteShipping(id uuid.UUID) error {
	if _, err := s.shippingRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShippingNotFound
		}
		return err
	}
	return s.shippingRepo.Delete(id)
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseOrderStatus string

const (
	PODraft     PurchaseOrderStatus = "draft"
	POPending   PurchaseOrderStatus = "pending"
	POConfirmed PurchaseOrderStatus = "confirmed"
	POOrdered   PurchaseOrderStatus = "ordered"
	POReceived  PurchaseOrderStatus = "received"
	POPartial   PurchaseOrderStatus = "partial"
	POCancelled PurchaseOrderStatus = "cancelled"
)

// poTransitions is the legal status transition table. Terminal states map to
// an empty set.
var poTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	PODraft:     {POPending, POCancelled},
	POPending:   {POConfirmed, POCancelled},
	POConfirmed: {POOrdered, POCancelled},
	POOrdered:   {POReceived, POPartial, POCancelled},
	POPartial:   {POReceived, POCancelled},
	POReceived:  {},
	POCancelled: {},
}

// CanTransitionTo reports whether moving to next is legal from s.
func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range poTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PurchaseOrder struct {
	BaseModel
	SupplierID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id" validate:"uuid_required"`
	Supplier             *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	OrderNumber          string              `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number" validate:"required"`
	OrderDate            time.Time           `gorm:"type:date;not null" json:"order_date" validate:"required"`
	ExpectedDeliveryDate *time.Time          `gorm:"type:date" json:"expected_delivery_date,omitempty"`
	Status               PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status" validate:"required,oneof=draft pending confirmed ordered received partial cancelled"`
	PaymentStatus        string              `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status" validate:"required,oneof=pending partial paid overdue"`
	PaymentTerms         string              `gorm:"type:varchar(100)" json:"payment_terms,omitempty"`
	Subtotal             decimal.Decimal     `gorm:"type:numeric(12,2);default:0" json:"subtotal"`
	TaxAmount            decimal.Decimal     `gorm:"type:numeric(12,2);default:0" json:"tax_amount"`
	DiscountAmount       decimal.Decimal     `gorm:"type:numeric(12,2);default:0" json:"discount_amount"`
	TotalAmount          decimal.Decimal     `gorm:"type:numeric(12,2);default:0" json:"total_amount"`
	Notes                string              `gorm:"type:text" json:"notes,omitempty"`
	DeliveryAddress      string              `gorm:"type:text" json:"delivery_address,omitempty"`

	Items []PurchaseOrderItem `json:"items,omitempty"`
}

type PurchaseOrderItem struct {
	BaseModel
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product         *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity        int             `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
}

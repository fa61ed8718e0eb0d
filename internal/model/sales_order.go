package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalesOrderStatus string

const (
	SOPending    SalesOrderStatus = "pending"
	SOConfirmed  SalesOrderStatus = "confirmed"
	SOProcessing SalesOrderStatus = "processing"
	SOShipped    SalesOrderStatus = "shipped"
	SODelivered  SalesOrderStatus = "delivered"
	SOCancelled  SalesOrderStatus = "cancelled"
)

var soTransitions = map[SalesOrderStatus][]SalesOrderStatus{
	SOPending:    {SOConfirmed, SOCancelled},
	SOConfirmed:  {SOProcessing, SOCancelled},
	SOProcessing: {SOShipped, SOCancelled},
	SOShipped:    {SODelivered},
	SODelivered:  {},
	SOCancelled:  {},
}

func (s SalesOrderStatus) CanTransitionTo(next SalesOrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range soTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type SalesOrder struct {
	BaseModel
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id" validate:"uuid_required"`
	Customer        *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderNumber     string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number" validate:"required"`
	OrderDate       time.Time        `gorm:"type:date;not null" json:"order_date" validate:"required"`
	DeliveryDate    *time.Time       `gorm:"type:date" json:"delivery_date,omitempty"`
	Status          SalesOrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
	PaymentStatus   string           `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status" validate:"required,oneof=pending partial paid overdue"`
	PaymentMethod   string           `gorm:"type:varchar(30)" json:"payment_method,omitempty"`
	Subtotal        decimal.Decimal  `gorm:"type:numeric(12,2);default:0" json:"subtotal"`
	TaxAmount       decimal.Decimal  `gorm:"type:numeric(12,2);default:0" json:"tax_amount"`
	DiscountAmount  decimal.Decimal  `gorm:"type:numeric(12,2);default:0" json:"discount_amount"`
	TotalAmount     decimal.Decimal  `gorm:"type:numeric(12,2);default:0" json:"total_amount"`
	Notes           string           `gorm:"type:text" json:"notes,omitempty"`
	ShippingAddress string           `gorm:"type:text" json:"shipping_address,omitempty"`
	BillingAddress  string           `gorm:"type:text" json:"billing_address,omitempty"`

	Items     []SalesOrderItem `json:"items,omitempty"`
	Shippings []Shipping       `json:"shippings,omitempty"`
}

type SalesOrderItem struct {
	BaseModel
	SalesOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"sales_order_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product      *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity     int             `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
}

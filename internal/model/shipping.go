package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Shipping struct {
	BaseModel
	SalesOrderID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"sales_order_id" validate:"uuid_required"`
	SalesOrder           *SalesOrder     `gorm:"foreignKey:SalesOrderID" json:"sales_order,omitempty"`
	CustomerID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id" validate:"uuid_required"`
	Customer             *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	TrackingNumber       string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"tracking_number" validate:"required"`
	ShippingDate         *time.Time      `gorm:"type:date" json:"shipping_date,omitempty"`
	ExpectedDeliveryDate *time.Time      `gorm:"type:date" json:"expected_delivery_date,omitempty"`
	Status               string          `gorm:"type:varchar(20);not null;default:'preparing'" json:"status" validate:"required,oneof=preparing in_transit delivered returned cancelled"`
	ShippingMethod       string          `gorm:"type:varchar(50)" json:"shipping_method"`
	ShippingCost         decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"shipping_cost"`
	Carrier              string          `gorm:"type:varchar(100)" json:"carrier"`
	ShippingAddress      string          `gorm:"type:text" json:"shipping_address"`
	Notes                string          `gorm:"type:text" json:"notes,omitempty"`
}

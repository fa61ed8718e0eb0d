package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FinanceRecord struct {
	BaseModel
	SalesOrderID    *uuid.UUID      `gorm:"type:uuid;index" json:"sales_order_id,omitempty"`
	SalesOrder      *SalesOrder     `gorm:"foreignKey:SalesOrderID" json:"sales_order,omitempty"`
	PurchaseOrderID *uuid.UUID      `gorm:"type:uuid;index" json:"purchase_order_id,omitempty"`
	PurchaseOrder   *PurchaseOrder  `gorm:"foreignKey:PurchaseOrderID" json:"purchase_order,omitempty"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type" validate:"required,oneof=income expense"`
	TransactionDate time.Time       `gorm:"type:date;not null" json:"transaction_date" validate:"required"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency        string          `gorm:"type:varchar(10);default:'PHP'" json:"currency"`
	PaymentMethod   string          `gorm:"type:varchar(30)" json:"payment_method"`
	ReferenceNumber string          `gorm:"type:varchar(50)" json:"reference_number"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Category        string          `gorm:"type:varchar(50)" json:"category"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"required,oneof=pending completed cancelled"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StockInStatus string

const (
	StockInPending  StockInStatus = "pending"
	StockInReceived StockInStatus = "received"
	StockInVerified StockInStatus = "verified"
	StockInRejected StockInStatus = "rejected"
)

// StockIn is a receiving record. It is created atomically with its items and
// the matching product stock increments; deletion reverses the increments in
// the same fashion.
type StockIn struct {
	BaseModel
	PurchaseOrderID *uuid.UUID     `gorm:"type:uuid;index" json:"purchase_order_id,omitempty"`
	PurchaseOrder   *PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"purchase_order,omitempty"`
	BatchID         *uuid.UUID     `gorm:"type:uuid;index" json:"batch_id,omitempty"`
	Batch           *Batch         `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
	ReferenceNumber string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference_number" validate:"required"`
	ReceiptDate     time.Time      `gorm:"type:date;not null" json:"receipt_date" validate:"required"`
	ReceivedBy      string         `gorm:"type:varchar(100);not null" json:"received_by" validate:"required"`
	Status          StockInStatus  `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"required,oneof=pending received verified rejected"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`

	Items []StockInItem `json:"items,omitempty"`
}

type StockInItem struct {
	BaseModel
	StockInID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"stock_in_id"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	UnitCost   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_cost"`
	TotalCost  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_cost"`
	ExpiryDate *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	LotNumber  string          `gorm:"type:varchar(50)" json:"lot_number,omitempty"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
}

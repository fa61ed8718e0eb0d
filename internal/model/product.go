package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the stock ledger entry. CurrentStock is a non-negative counter
// mutated only through atomic SQL updates in the repository layer, never
// read-modify-write in application code.
type Product struct {
	BaseModel
	SKU          string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category     *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CostPrice    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"cost_price"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"selling_price"`
	ReorderLevel int             `gorm:"default:0" json:"reorder_level" validate:"gte=0"`
	CurrentStock int             `gorm:"default:0" json:"current_stock" validate:"gte=0"`
	Unit         string          `gorm:"type:varchar(20)" json:"unit"`
	Barcode      string          `gorm:"type:varchar(100)" json:"barcode,omitempty"`
	Brand        string          `gorm:"type:varchar(100)" json:"brand,omitempty"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`

	Batches []Batch `json:"batches,omitempty"`
}

// IsLowStock reports whether the product sits at or below its reorder level.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderLevel
}

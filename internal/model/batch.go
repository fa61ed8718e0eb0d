package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Batch is a dated lot of a product, used for expiry tracking.
type Batch struct {
	BaseModel
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product           *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	BatchNumber       string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"batch_number" validate:"required"`
	ManufacturingDate *time.Time      `gorm:"type:date" json:"manufacturing_date,omitempty"`
	ExpiryDate        *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	Quantity          int             `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	CostPrice         decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"cost_price"`
	LotNumber         string          `gorm:"type:varchar(50)" json:"lot_number,omitempty"`
	Notes             string          `gorm:"type:text" json:"notes,omitempty"`
	IsActive          bool            `gorm:"default:true" json:"is_active"`
}

// DatesValid checks expiry is after manufacturing when both are present.
func (b *Batch) DatesValid() bool {
	if b.ManufacturingDate == nil || b.ExpiryDate == nil {
		return true
	}
	return b.ExpiryDate.After(*b.ManufacturingDate)
}

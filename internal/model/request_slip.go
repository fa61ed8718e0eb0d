package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestSlipStatus string

const (
	RequestSlipPending   RequestSlipStatus = "pending"
	RequestSlipApproved  RequestSlipStatus = "approved"
	RequestSlipRejected  RequestSlipStatus = "rejected"
	RequestSlipFulfilled RequestSlipStatus = "fulfilled"
)

// RequestSlip is an internal stock request from a department. It carries no
// stock effect of its own; fulfilment goes through a sales issuance or
// stock adjustment.
type RequestSlip struct {
	BaseModel
	SlipNumber   string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"slip_number" validate:"required"`
	RequestDate  time.Time         `gorm:"type:date;not null" json:"request_date" validate:"required"`
	RequestedBy  string            `gorm:"type:varchar(100);not null" json:"requested_by" validate:"required"`
	Department   string            `gorm:"type:varchar(100)" json:"department"`
	Purpose      string            `gorm:"type:text" json:"purpose,omitempty"`
	Status       RequestSlipStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"required,oneof=pending approved rejected fulfilled"`
	ApprovedBy   string            `gorm:"type:varchar(100)" json:"approved_by,omitempty"`
	ApprovedDate *time.Time        `gorm:"type:date" json:"approved_date,omitempty"`
	Notes        string            `gorm:"type:text" json:"notes,omitempty"`

	Items []RequestSlipItem `json:"items,omitempty"`
}

type RequestSlipItem struct {
	BaseModel
	RequestSlipID uuid.UUID `gorm:"type:uuid;not null;index" json:"request_slip_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product       *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity      int       `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	Purpose       string    `gorm:"type:text" json:"purpose,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
}

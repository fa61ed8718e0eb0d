package model

import "github.com/shopspring/decimal"

type Supplier struct {
	BaseModel
	CompanyName   string          `gorm:"type:varchar(255);not null" json:"company_name" validate:"required"`
	ContactPerson string          `gorm:"type:varchar(100)" json:"contact_person"`
	Email         string          `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string          `gorm:"type:varchar(30)" json:"phone"`
	Address       string          `gorm:"type:text" json:"address"`
	City          string          `gorm:"type:varchar(100)" json:"city"`
	Country       string          `gorm:"type:varchar(100)" json:"country"`
	PaymentTerms  string          `gorm:"type:varchar(100)" json:"payment_terms"`
	CreditLimit   decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"credit_limit"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`

	PurchaseOrders []PurchaseOrder `json:"purchase_orders,omitempty"`
}

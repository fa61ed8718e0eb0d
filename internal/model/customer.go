package model

import "github.com/shopspring/decimal"

type Customer struct {
	BaseModel
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email         string          `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string          `gorm:"type:varchar(30)" json:"phone"`
	Address       string          `gorm:"type:text" json:"address"`
	City          string          `gorm:"type:varchar(100)" json:"city"`
	Country       string          `gorm:"type:varchar(100)" json:"country"`
	CustomerType  string          `gorm:"type:varchar(30)" json:"customer_type"` // individual, business
	BusinessName  string          `gorm:"type:varchar(255)" json:"business_name,omitempty"`
	ContactPerson string          `gorm:"type:varchar(100)" json:"contact_person,omitempty"`
	CreditLimit   decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"credit_limit"`
	PaymentTerms  string          `gorm:"type:varchar(100)" json:"payment_terms"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`

	SalesOrders []SalesOrder `json:"sales_orders,omitempty"`
}

package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "stock_in:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	// Master data
	{Code: "product:view", Name: "View Product"},
	{Code: "product:create", Name: "Create Product"},
	{Code: "product:update", Name: "Update Product"},
	{Code: "product:delete", Name: "Delete Product"},
	{Code: "supplier:manage", Name: "Manage Suppliers"},
	{Code: "customer:manage", Name: "Manage Customers"},
	// Procurement and receiving
	{Code: "purchase_order:view", Name: "View Purchase Order"},
	{Code: "purchase_order:create", Name: "Create Purchase Order"},
	{Code: "purchase_order:update", Name: "Update Purchase Order"},
	{Code: "purchase_order:delete", Name: "Delete Purchase Order"},
	{Code: "stock_in:view", Name: "View Stock-In"},
	{Code: "stock_in:create", Name: "Create Stock-In"},
	{Code: "stock_in:update", Name: "Update Stock-In"},
	{Code: "stock_in:delete", Name: "Delete Stock-In"},
	// Sales and fulfilment
	{Code: "sales_order:view", Name: "View Sales Order"},
	{Code: "sales_order:create", Name: "Create Sales Order"},
	{Code: "sales_order:update", Name: "Update Sales Order"},
	{Code: "sales_order:delete", Name: "Delete Sales Order"},
	{Code: "shipping:manage", Name: "Manage Shipping"},
	{Code: "request_slip:manage", Name: "Manage Request Slips"},
	// Finance and reporting
	{Code: "finance:manage", Name: "Manage Finance Records"},
	{Code: "dashboard:view", Name: "View Dashboard"},
	{Code: "activity_log:view", Name: "View Activity Logs"},
}

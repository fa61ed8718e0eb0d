package repository

import (
	"time"

	"go-stockroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockMovementData is a per-day aggregate for the dashboard chart.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats is the overview block on the dashboard.
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
	PendingOrders  int64           `json:"pending_orders"`
}

type ReportRepository interface {
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

// GetStockMovement merges daily inbound (stock-in items) and outbound (sales
// order items) totals over the requested window.
func (r *reportRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	type row struct {
		Date string
		Qty  int
	}

	var inbound []row
	err := r.db.Model(&model.StockInItem{}).
		Select("DATE(stock_ins.receipt_date) as date, COALESCE(SUM(stock_in_items.quantity), 0) as qty").
		Joins("JOIN stock_ins ON stock_ins.id = stock_in_items.stock_in_id").
		Where("stock_ins.receipt_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(stock_ins.receipt_date)").
		Scan(&inbound).Error
	if err != nil {
		return nil, err
	}

	var outbound []row
	err = r.db.Model(&model.SalesOrderItem{}).
		Select("DATE(sales_orders.order_date) as date, COALESCE(SUM(sales_order_items.quantity), 0) as qty").
		Joins("JOIN sales_orders ON sales_orders.id = sales_order_items.sales_order_id").
		Where("sales_orders.order_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(sales_orders.order_date)").
		Scan(&outbound).Error
	if err != nil {
		return nil, err
	}

	byDate := map[string]*StockMovementData{}
	for _, in := range inbound {
		byDate[in.Date] = &StockMovementData{Date: in.Date, Inbound: in.Qty}
	}
	for _, out := range outbound {
		if entry, ok := byDate[out.Date]; ok {
			entry.Outbound = out.Qty
		} else {
			byDate[out.Date] = &StockMovementData{Date: out.Date, Outbound: out.Qty}
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// ISO dates sort lexicographically
	for i := 0; i < len(dates); i++ {
		for j := i + 1; j < len(dates); j++ {
			if dates[j] < dates[i] {
				dates[i], dates[j] = dates[j], dates[i]
			}
		}
	}

	results := make([]StockMovementData, 0, len(dates))
	for _, d := range dates {
		results = append(results, *byDate[d])
	}
	return results, nil
}

func (r *reportRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("current_stock <= reorder_level").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	var valuation decimal.NullDecimal
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(current_stock * cost_price), 0)").
		Scan(&valuation).Error; err != nil {
		return nil, err
	}
	if valuation.Valid {
		stats.TotalValuation = valuation.Decimal
	}

	if err := r.db.Model(&model.PurchaseOrder{}).
		Where("status IN ?", POPendingStatuses()).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// POPendingStatuses lists purchase order statuses still awaiting receipt.
func POPendingStatuses() []model.PurchaseOrderStatus {
	return []model.PurchaseOrderStatus{
		model.POPending, model.POConfirmed, model.POOrdered, model.POPartial,
	}
}

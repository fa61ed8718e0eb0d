package service

import (
	"time"

	"go-stockroom/internal/repository"

	"github.com/shopspring/decimal"
)

type FinancialSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
	GetFinancialSummary(startDate, endDate time.Time) (*FinancialSummary, error)
}

type dashboardService struct {
	reportRepo  repository.ReportRepository
	financeRepo repository.FinanceRepository
}

func NewDashboardService(reportRepo repository.ReportRepository, financeRepo repository.FinanceRepository) DashboardService {
	return &dashboardService{reportRepo: reportRepo, financeRepo: financeRepo}
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.reportRepo.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.reportRepo.GetDashboardStats()
}

func (s *dashboardService) GetFinancialSummary(startDate, endDate time.Time) (*FinancialSummary, error) {
	income, err := s.financeRepo.SumByType("income", startDate, endDate)
	if err != nil {
		return nil, err
	}
	expense, err := s.financeRepo.SumByType("expense", startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &FinancialSummary{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}, nil
}

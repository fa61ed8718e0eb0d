package repository

import (
	"time"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinanceRepository interface {
	FindAll() ([]model.FinanceRecord, error)
	FindByID(id uuid.UUID) (*model.FinanceRecord, error)
	Create(record *model.FinanceRecord) error
	Update(record *model.FinanceRecord) error
	Delete(id uuid.UUID) error
	SumByType(txType string, startDate, endDate time.Time) (decimal.Decimal, error)
}

type financeRepo struct {
	db *gorm.DB
}

func NewFinanceRepo(db *gorm.DB) FinanceRepository {
	return &financeRepo{db}
}

func (r *financeRepo) FindAll() ([]model.FinanceRecord, error) {
	var records []model.FinanceRecord
	err := r.db.Preload("SalesOrder").Preload("PurchaseOrder").
		Order("transaction_date DESC").Find(&records).Error
	return records, err
}

func (r *financeRepo) FindByID(id uuid.UUID) (*model.FinanceRecord, error) {
	var record model.FinanceRecord
	err := r.db.Preload("SalesOrder").Preload("PurchaseOrder").
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *financeRepo) Create(record *model.FinanceRecord) error {
	return r.db.Create(record).Error
}

func (r *financeRepo) Update(record *model.FinanceRecord) error {
	return r.db.Save(record).Error
}

func (r *financeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.FinanceRecord{}, "id = ?", id).Error
}

func (r *financeRepo) SumByType(txType string, startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&model.FinanceRecord{}).
		Where("transaction_type = ? AND transaction_date BETWEEN ? AND ?", txType, startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

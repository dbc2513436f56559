package salary

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, txn *SalaryTransaction) error
	FindAll(ctx context.Context) ([]SalaryTransaction, error)
	FindByMonth(ctx context.Context, month string) ([]SalaryTransaction, error)
	FindEmployee(ctx context.Context, employeeID string) (*CreditEmployee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, txn *SalaryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryTransaction, error) {
	var txns []SalaryTransaction
	err := r.db.WithContext(ctx).
		Order("credited_date DESC").
		Find(&txns).Error
	return txns, err
}

func (r *repository) FindByMonth(ctx context.Context, month string) ([]SalaryTransaction, error) {
	var txns []SalaryTransaction
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("credited_date DESC").
		Find(&txns).Error
	return txns, err
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*CreditEmployee, error) {
	var empl CreditEmployee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_id = ?", employeeID).Error
	return &empl, err
}

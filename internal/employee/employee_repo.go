package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, activeOnly bool) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	SetStatus(ctx context.Context, employeeID string, status Status) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]Employee, error) {
	var empls []Employee
	db := r.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("status = ?", StatusActive)
	}
	err := db.Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("employee_id", "name").
		Where("status = ?", StatusActive).
		Order("name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_id = ?", employeeID).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

// SetStatus reports the number of matched rows so the service can tell a
// missing employee (0) from an idempotent re-deactivation (1).
func (r *repository) SetStatus(ctx context.Context, employeeID string, status Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

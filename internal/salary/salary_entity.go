package salary

import (
	"time"

	"github.com/google/uuid"
)

// SalaryTransaction is insert-only: the application never updates or deletes
// a credited row. EmployeeName is a frozen copy taken at credit time; later
// renames of the employee must not rewrite history.
type SalaryTransaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id;type:varchar(50);not null;index:uq_salaries_employee_month,unique"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(255);not null"`
	Amount       float64   `gorm:"column:amount;type:numeric(12,2);not null"`
	Month        string    `gorm:"column:month;type:varchar(20);not null;index:uq_salaries_employee_month,unique"`
	CreditedDate time.Time `gorm:"column:credited_date;not null"`
	CreatedAt    time.Time
}

func (SalaryTransaction) TableName() string {
	return "salaries"
}

// CreditEmployee is the minimal slice of the employees table the ledger
// needs to resolve a payment target.
type CreditEmployee struct {
	EmployeeID string `gorm:"column:employee_id"`
	Name       string `gorm:"column:name"`
	Status     string `gorm:"column:status"`
}

func (CreditEmployee) TableName() string {
	return "employees"
}

package employee

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Employee is never physically deleted: removal flips Status to Inactive and
// the row stays for history. EmployeeID is the operator-facing identifier;
// both it and Email are guarded by unique indexes so the insert itself is
// the only arbiter of duplicates.
type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  string    `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_employees_employee_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Email       string    `gorm:"column:email;type:text;not null;uniqueIndex:uq_employees_email"`
	Designation string    `gorm:"column:designation;type:varchar(120)"`
	Status      Status    `gorm:"column:status;type:varchar(20);not null;default:'Active';index"`
	JoinedDate  time.Time `gorm:"column:joined_date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

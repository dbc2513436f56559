package employee

type RegisterEmployeeRequest struct {
	// Optional: when empty the registry generates the next EMP-XXXXXX number.
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Designation string `json:"designation"`
}

type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Designation string `json:"designation"`
}

type EmployeeResponse struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Status      string `json:"status"`
	JoinedDate  string `json:"joined_date"`
}

// EmployeeOption is the (id, name) pair the salary form's dropdown needs.
type EmployeeOption struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}

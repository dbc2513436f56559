package salary

type CreditSalaryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	// Free-form period key, by convention YYYY-MM. Part of the uniqueness
	// key, not validated as a calendar value.
	Month string `json:"month" binding:"required"`
}

type SalaryTransactionResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Amount       float64 `json:"amount"`
	Month        string  `json:"month"`
	CreditedDate string  `json:"credited_date"`
}

package salaryerrors

import (
	"hr-ledger/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicatePayment = apperror.New(
		apperror.CodeConflict,
		"Duplicate payment prevented for this month",
		http.StatusConflict,
	)
)

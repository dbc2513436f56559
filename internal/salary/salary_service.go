package salary

import (
	"context"
	"time"

	"hr-ledger/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Credit(ctx context.Context, req CreditSalaryRequest) (SalaryTransactionResponse, error)
	History(ctx context.Context, month string) ([]SalaryTransactionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, logger: l}
}

// Credit records one payment. The employee's current name is copied onto the
// transaction and frozen there; the compound unique index on
// (employee_id, month) rejects a second payment for the same period, and a
// rejected insert leaves nothing behind.
func (s *service) Credit(
	ctx context.Context,
	req CreditSalaryRequest,
) (SalaryTransactionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("credit salary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", req.Month),
	)

	empl, err := s.repo.FindEmployee(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("credit salary employee lookup failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return SalaryTransactionResponse{}, mapRepositoryError(err)
	}

	txn := &SalaryTransaction{
		ID:           uuid.New(),
		EmployeeID:   empl.EmployeeID,
		EmployeeName: empl.Name,
		Amount:       req.Amount,
		Month:        req.Month,
		CreditedDate: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		s.logger.Warn("credit salary persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("month", req.Month),
			zap.Error(err),
		)
		return SalaryTransactionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("credit salary success",
		zap.String("request_id", rid),
		zap.String("employee_id", txn.EmployeeID),
		zap.String("month", txn.Month),
	)

	return mapToResponse(*txn), nil
}

// History returns all transactions, or those of one period when month is
// set. The month is matched as an exact string.
func (s *service) History(
	ctx context.Context,
	month string,
) ([]SalaryTransactionResponse, error) {
	s.logger.Debug("salary history requested", zap.String("month", month))

	var (
		txns []SalaryTransaction
		err  error
	)
	if month == "" {
		txns, err = s.repo.FindAll(ctx)
	} else {
		txns, err = s.repo.FindByMonth(ctx, month)
	}
	if err != nil {
		s.logger.Error("salary history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(txns), nil
}

func mapToResponse(txn SalaryTransaction) SalaryTransactionResponse {
	return SalaryTransactionResponse{
		ID:           txn.ID.String(),
		EmployeeID:   txn.EmployeeID,
		EmployeeName: txn.EmployeeName,
		Amount:       txn.Amount,
		Month:        txn.Month,
		CreditedDate: txn.CreditedDate.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(txns []SalaryTransaction) []SalaryTransactionResponse {
	res := make([]SalaryTransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = mapToResponse(txn)
	}
	return res
}

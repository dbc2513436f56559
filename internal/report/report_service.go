package report

import (
	"context"

	"hr-ledger/internal/salary"

	"go.uber.org/zap"
)

// HistoryProvider is the slice of the salary service the reports need.
type HistoryProvider interface {
	History(ctx context.Context, month string) ([]salary.SalaryTransactionResponse, error)
}

type MonthlyReport struct {
	Month        string                             `json:"month"`
	Count        int                                `json:"count"`
	TotalAmount  float64                            `json:"total_amount"`
	Transactions []salary.SalaryTransactionResponse `json:"transactions"`
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Monthly(ctx context.Context, month string) (MonthlyReport, error)
	ExportCSV(ctx context.Context, month string) ([]byte, error)
	ExportWorkbook(ctx context.Context, month string) ([]byte, error)
}

type service struct {
	history HistoryProvider
	logger  *zap.Logger
}

func NewService(history HistoryProvider, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{history: history, logger: l}
}

func (s *service) Monthly(ctx context.Context, month string) (MonthlyReport, error) {
	txns, err := s.history.History(ctx, month)
	if err != nil {
		s.logger.Error("monthly report load failed", zap.String("month", month), zap.Error(err))
		return MonthlyReport{}, err
	}

	var total float64
	for _, txn := range txns {
		total += txn.Amount
	}

	return MonthlyReport{
		Month:        month,
		Count:        len(txns),
		TotalAmount:  total,
		Transactions: txns,
	}, nil
}

func (s *service) ExportCSV(ctx context.Context, month string) ([]byte, error) {
	txns, err := s.history.History(ctx, month)
	if err != nil {
		s.logger.Error("csv export load failed", zap.String("month", month), zap.Error(err))
		return nil, err
	}
	return BuildCSV(txns)
}

func (s *service) ExportWorkbook(ctx context.Context, month string) ([]byte, error) {
	txns, err := s.history.History(ctx, month)
	if err != nil {
		s.logger.Error("workbook export load failed", zap.String("month", month), zap.Error(err))
		return nil, err
	}
	return BuildWorkbook(txns)
}

package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"hr-ledger/internal/report"
	reportMock "hr-ledger/internal/report/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReportService_Monthly(t *testing.T) {
	ctx := context.Background()

	t.Run("totals and count match the transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := reportMock.NewMockHistoryProvider(ctrl)
		svc := report.NewService(history)

		history.EXPECT().
			History(ctx, "2026-08").
			Return(sampleTransactions(), nil)

		rep, err := svc.Monthly(ctx, "2026-08")

		assert.NoError(t, err)
		assert.Equal(t, "2026-08", rep.Month)
		assert.Equal(t, 2, rep.Count)
		assert.Equal(t, 9300.50, rep.TotalAmount)
		assert.Len(t, rep.Transactions, 2)
	})

	t.Run("empty month reports zero totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := reportMock.NewMockHistoryProvider(ctrl)
		svc := report.NewService(history)

		history.EXPECT().
			History(ctx, "2026-01").
			Return(nil, nil)

		rep, err := svc.Monthly(ctx, "2026-01")

		assert.NoError(t, err)
		assert.Equal(t, 0, rep.Count)
		assert.Equal(t, float64(0), rep.TotalAmount)
	})

	t.Run("history error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := reportMock.NewMockHistoryProvider(ctrl)
		svc := report.NewService(history)

		history.EXPECT().
			History(ctx, "2026-08").
			Return(nil, errors.New("db error"))

		_, err := svc.Monthly(ctx, "2026-08")

		assert.Error(t, err)
	})
}

func TestReportService_ExportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("one record per transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := reportMock.NewMockHistoryProvider(ctrl)
		svc := report.NewService(history)

		txns := sampleTransactions()
		history.EXPECT().
			History(ctx, "2026-08").
			Return(txns, nil)

		data, err := svc.ExportCSV(ctx, "2026-08")
		assert.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, records, len(txns)+1)
	})

	t.Run("history error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := reportMock.NewMockHistoryProvider(ctrl)
		svc := report.NewService(history)

		history.EXPECT().
			History(ctx, "2026-08").
			Return(nil, errors.New("db error"))

		data, err := svc.ExportCSV(ctx, "2026-08")

		assert.Error(t, err)
		assert.Nil(t, data)
	})
}

func TestReportService_ExportWorkbook(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	history := reportMock.NewMockHistoryProvider(ctrl)
	svc := report.NewService(history)

	history.EXPECT().
		History(ctx, "2026-08").
		Return(sampleTransactions(), nil)

	data, err := svc.ExportWorkbook(ctx, "2026-08")

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}

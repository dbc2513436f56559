package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-ledger/internal/report"
	reportMock "hr-ledger/internal/report/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*reportMock.MockService, *report.Handler) {
	ctrl := gomock.NewController(t)
	svc := reportMock.NewMockService(ctrl)
	return svc, report.NewHandler(svc)
}

func TestReportHandler_Monthly(t *testing.T) {
	svc, h := setupHandlerTest(t)

	svc.EXPECT().
		Monthly(gomock.Any(), "2026-08").
		Return(report.MonthlyReport{Month: "2026-08", Count: 2, TotalAmount: 9300.50}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/salaries/2026-08", nil)
	c.Params = gin.Params{{Key: "month", Value: "2026-08"}}

	h.Monthly(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9300.5")
}

func TestReportHandler_Export(t *testing.T) {
	t.Run("csv is the default format", func(t *testing.T) {
		svc, h := setupHandlerTest(t)

		svc.EXPECT().
			ExportCSV(gomock.Any(), "2026-08").
			DoAndReturn(func(ctx context.Context, month string) ([]byte, error) {
				return []byte("employeeId,employeeName,amount,month,date\n"), nil
			})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/reports/salaries/2026-08/export", nil)
		c.Params = gin.Params{{Key: "month", Value: "2026-08"}}

		h.Export(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=Salary_2026-08.csv", w.Header().Get("Content-Disposition"))
	})

	t.Run("xlsx format", func(t *testing.T) {
		svc, h := setupHandlerTest(t)

		svc.EXPECT().
			ExportWorkbook(gomock.Any(), "2026-08").
			Return([]byte{0x50, 0x4b}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/reports/salaries/2026-08/export?format=xlsx", nil)
		c.Params = gin.Params{{Key: "month", Value: "2026-08"}}

		h.Export(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "attachment; filename=Salary_2026-08.xlsx", w.Header().Get("Content-Disposition"))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, h := setupHandlerTest(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/reports/salaries/2026-08/export?format=pdf", nil)
		c.Params = gin.Params{{Key: "month", Value: "2026-08"}}

		h.Export(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

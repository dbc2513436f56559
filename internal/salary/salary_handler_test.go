package salary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-ledger/internal/salary"
	salaryerrors "hr-ledger/internal/salary/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryService struct {
	creditFn  func(ctx context.Context, req salary.CreditSalaryRequest) (salary.SalaryTransactionResponse, error)
	historyFn func(ctx context.Context, month string) ([]salary.SalaryTransactionResponse, error)
}

func (f *fakeSalaryService) Credit(ctx context.Context, req salary.CreditSalaryRequest) (salary.SalaryTransactionResponse, error) {
	return f.creditFn(ctx, req)
}
func (f *fakeSalaryService) History(ctx context.Context, month string) ([]salary.SalaryTransactionResponse, error) {
	return f.historyFn(ctx, month)
}

func TestSalaryHandler_Credit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeSalaryService{
			creditFn: func(ctx context.Context, req salary.CreditSalaryRequest) (salary.SalaryTransactionResponse, error) {
				assert.Equal(t, "EMP001", req.EmployeeID)
				assert.Equal(t, "2026-08", req.Month)
				return salary.SalaryTransactionResponse{
					EmployeeID:   req.EmployeeID,
					EmployeeName: "Alice Wong",
					Amount:       req.Amount,
					Month:        req.Month,
				}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"EMP001","amount":5200.5,"month":"2026-08"}`
		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Credit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Alice Wong")
	})

	t.Run("missing month", func(t *testing.T) {
		h := salary.NewHandler(&fakeSalaryService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"EMP001","amount":5200.5}`
		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Credit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("duplicate payment", func(t *testing.T) {
		svc := &fakeSalaryService{
			creditFn: func(ctx context.Context, req salary.CreditSalaryRequest) (salary.SalaryTransactionResponse, error) {
				return salary.SalaryTransactionResponse{}, salaryerrors.ErrDuplicatePayment
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"EMP001","amount":5200.5,"month":"2026-08"}`
		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Credit(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Duplicate payment prevented")
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := &fakeSalaryService{
			creditFn: func(ctx context.Context, req salary.CreditSalaryRequest) (salary.SalaryTransactionResponse, error) {
				return salary.SalaryTransactionResponse{}, salaryerrors.ErrEmployeeNotFound
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"GHOST","amount":100,"month":"2026-08"}`
		req := httptest.NewRequest(http.MethodPost, "/salaries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Credit(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSalaryHandler_History(t *testing.T) {
	t.Run("month query param is forwarded", func(t *testing.T) {
		svc := &fakeSalaryService{
			historyFn: func(ctx context.Context, month string) ([]salary.SalaryTransactionResponse, error) {
				assert.Equal(t, "2026-08", month)
				return []salary.SalaryTransactionResponse{
					{EmployeeID: "EMP001", EmployeeName: "Alice Wong", Month: month},
				}, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/salaries?month=2026-08", nil)

		h.History(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "EMP001")
	})

	t.Run("no month means full history", func(t *testing.T) {
		svc := &fakeSalaryService{
			historyFn: func(ctx context.Context, month string) ([]salary.SalaryTransactionResponse, error) {
				assert.Equal(t, "", month)
				return nil, nil
			},
		}

		h := salary.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/salaries", nil)

		h.History(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

package salary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-ledger/internal/salary"
	salaryerrors "hr-ledger/internal/salary/errors"
	salaryMock "hr-ledger/internal/salary/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) (*salaryMock.MockRepository, salary.Service) {
	ctrl := gomock.NewController(t)
	repo := salaryMock.NewMockRepository(ctrl)
	svc := salary.NewService(repo)
	return repo, svc
}

func TestSalaryService_Credit(t *testing.T) {
	ctx := context.Background()

	t.Run("success freezes the employee's current name", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindEmployee(ctx, "EMP001").
			Return(&salary.CreditEmployee{
				EmployeeID: "EMP001",
				Name:       "Alice Wong",
				Status:     "Active",
			}, nil)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, txn *salary.SalaryTransaction) error {
				assert.Equal(t, "EMP001", txn.EmployeeID)
				assert.Equal(t, "Alice Wong", txn.EmployeeName)
				assert.Equal(t, 5200.50, txn.Amount)
				assert.Equal(t, "2026-08", txn.Month)
				assert.False(t, txn.CreditedDate.IsZero())
				return nil
			})

		res, err := svc.Credit(ctx, salary.CreditSalaryRequest{
			EmployeeID: "EMP001",
			Amount:     5200.50,
			Month:      "2026-08",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Alice Wong", res.EmployeeName)
		assert.Equal(t, "2026-08", res.Month)
	})

	t.Run("unknown employee writes no transaction", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindEmployee(ctx, "GHOST").
			Return(nil, gorm.ErrRecordNotFound)

		// no Create expectation: inserting after a failed lookup would fail
		// the controller

		_, err := svc.Credit(ctx, salary.CreditSalaryRequest{
			EmployeeID: "GHOST",
			Amount:     1000,
			Month:      "2026-08",
		})

		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})

	t.Run("second payment for same month is rejected", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindEmployee(ctx, "EMP001").
			Return(&salary.CreditEmployee{EmployeeID: "EMP001", Name: "Alice Wong"}, nil)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salaries_employee_month"})

		_, err := svc.Credit(ctx, salary.CreditSalaryRequest{
			EmployeeID: "EMP001",
			Amount:     5200.50,
			Month:      "2026-08",
		})

		assert.ErrorIs(t, err, salaryerrors.ErrDuplicatePayment)
	})

	t.Run("different months succeed independently", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindEmployee(ctx, "EMP001").
			Return(&salary.CreditEmployee{EmployeeID: "EMP001", Name: "Alice Wong"}, nil).
			Times(2)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil).
			Times(2)

		_, err := svc.Credit(ctx, salary.CreditSalaryRequest{EmployeeID: "EMP001", Amount: 5000, Month: "2026-07"})
		assert.NoError(t, err)

		_, err = svc.Credit(ctx, salary.CreditSalaryRequest{EmployeeID: "EMP001", Amount: 5000, Month: "2026-08"})
		assert.NoError(t, err)
	})
}

func TestSalaryService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("month filter uses exact match", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindByMonth(ctx, "2026-08").
			Return([]salary.SalaryTransaction{
				{
					ID:           uuid.New(),
					EmployeeID:   "EMP001",
					EmployeeName: "Alice Wong",
					Amount:       5200.50,
					Month:        "2026-08",
					CreditedDate: time.Now(),
				},
			}, nil)

		res, err := svc.History(ctx, "2026-08")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Alice Wong", res[0].EmployeeName)
	})

	t.Run("empty month returns everything", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindAll(ctx).
			Return([]salary.SalaryTransaction{{}, {}}, nil)

		res, err := svc.History(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, svc := setupServiceTest(t)

		repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db error"))

		res, err := svc.History(ctx, "")

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

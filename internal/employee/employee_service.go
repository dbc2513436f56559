package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "hr-ledger/internal/employee/errors"
	"hr-ledger/internal/shared/contextutil"
	"hr-ledger/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, employeeID string) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// Register inserts the employee directly; there is no existence pre-read.
// The unique indexes on employee_id and email decide every conflict, so two
// concurrent registrations can never both land.
func (s *service) Register(
	ctx context.Context,
	req RegisterEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	if req.EmployeeID == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_id")
		if err != nil {
			s.logger.Error("register employee generate id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeID = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:          uuid.New(),
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		Status:      StatusActive,
		JoinedDate:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Warn("register employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("register employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	activeOnly bool,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.Bool("active_only", activeOnly))
	empls, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

// GetOptions serves the salary form's dropdown. Registry writes invalidate
// the key, so the cache never outlives a rename or deactivation.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var opts []EmployeeOption
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	// Singleflight collapses the stampede when the form is opened by many
	// operators at once.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		opts := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			opts[i] = EmployeeOption{EmployeeID: e.EmployeeID, Name: e.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return opts, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByEmployeeID(
	ctx context.Context,
	employeeID string,
) (EmployeeResponse, error) {
	s.logger.Debug("get employee requested", zap.String("employee_id", employeeID))
	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Update overwrites the mutable fields (name, email, designation) by
// employee ID. A missing target is an error, not a silent success.
func (s *service) Update(
	ctx context.Context,
	employeeID string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", employeeID))

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Email = req.Email
	empl.Designation = req.Designation

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Warn("update employee persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", employeeID))

	return mapToResponse(*empl), nil
}

// Deactivate is the soft delete: status flips to Inactive and the record
// stays. Re-deactivating is a no-op; only an employee ID that never existed
// is an error.
func (s *service) Deactivate(ctx context.Context, employeeID string) error {
	s.logger.Debug("deactivate employee requested", zap.String("employee_id", employeeID))

	rows, err := s.repo.SetStatus(ctx, employeeID, StatusInactive)
	if err != nil {
		s.logger.Error("deactivate employee failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("deactivate employee success", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  empl.EmployeeID,
		Name:        empl.Name,
		Email:       empl.Email,
		Designation: empl.Designation,
		Status:      string(empl.Status),
		JoinedDate:  empl.JoinedDate.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

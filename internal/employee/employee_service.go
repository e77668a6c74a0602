package employee

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-employees/internal/department"
	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/role"
	"go-employees/internal/salaryhistory"
	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DateLayout        = "2006-01-02"
	JoiningSalaryNote = "Joining salary"
)

type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListSummaries(ctx context.Context) ([]EmployeeSummaryResponse, error)
	FormOptions(ctx context.Context) (FormOptionsResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	salaries    salaryhistory.Repository
	departments department.Repository
	roles       role.Repository
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	salaries salaryhistory.Repository,
	departments department.Repository,
	roles role.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		salaries:    salaries,
		departments: departments,
		roles:       roles,
		logger:      l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetNamedLogger(ctx, "employee.service", s.logger)
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	s.log(ctx).Debug("list employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) ListSummaries(ctx context.Context) ([]EmployeeSummaryResponse, error) {
	s.log(ctx).Debug("list employee summaries requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("list employee summaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeSummaryResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToSummary(e)
	}
	return res, nil
}

func (s *service) FormOptions(ctx context.Context) (FormOptionsResponse, error) {
	depts, err := s.departments.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("form options departments failed", zap.Error(err))
		return FormOptionsResponse{}, err
	}
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("form options roles failed", zap.Error(err))
		return FormOptionsResponse{}, err
	}
	managers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("form options managers failed", zap.Error(err))
		return FormOptionsResponse{}, mapRepositoryError(err)
	}

	opts := FormOptionsResponse{
		Departments: make([]OptionResponse, len(depts)),
		Roles:       make([]OptionResponse, len(roles)),
		Managers:    make([]OptionResponse, len(managers)),
	}
	for i, d := range depts {
		opts.Departments[i] = OptionResponse{ID: d.ID, Label: d.Name}
	}
	for i, r := range roles {
		opts.Roles[i] = OptionResponse{ID: r.ID, Label: r.Title}
	}
	for i, m := range managers {
		opts.Managers[i] = OptionResponse{ID: m.ID, Label: m.FullName()}
	}
	return opts, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	logger := s.log(ctx)
	logger.Debug("create employee requested",
		zap.String("email", req.Email),
		zap.String("department_id", req.DepartmentID),
		zap.String("role_id", req.RoleID),
	)

	empl, salary, err := buildEmployee(req)
	if err != nil {
		logger.Warn("create employee invalid input", zap.Error(err))
		return EmployeeResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			logger.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if salary == nil {
			return nil
		}
		entry := &salaryhistory.SalaryHistory{
			EmployeeID:    empl.ID,
			EffectiveDate: empl.HireDate,
			Salary:        *salary,
			Note:          JoiningSalaryNote,
		}
		if err := s.salaries.WithTx(tx).Create(ctx, entry); err != nil {
			logger.Error("create joining salary failed",
				zap.Uint("employee_id", empl.ID),
				zap.Error(err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	logger.Info("create employee success",
		zap.Uint("employee_id", empl.ID),
		zap.Bool("joining_salary", salary != nil),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error) {
	logger := s.log(ctx)
	logger.Debug("get employee by id requested", zap.String("employee_id", id))

	emplID, ok := parseID(id)
	if !ok {
		return EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, emplID)
	if err != nil {
		logger.Warn("get employee by id failed", zap.Uint("employee_id", emplID), zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	entries, err := s.salaries.FindByEmployee(ctx, emplID)
	if err != nil {
		logger.Error("get salary history failed", zap.Uint("employee_id", emplID), zap.Error(err))
		return EmployeeDetailResponse{}, err
	}

	detail := EmployeeDetailResponse{
		EmployeeResponse: mapToResponse(*empl),
		Salaries:         make([]SalaryEntryResponse, len(entries)),
	}
	for i, e := range entries {
		detail.Salaries[i] = SalaryEntryResponse{
			EffectiveDate: e.EffectiveDate.Format(DateLayout),
			Salary:        e.Salary,
			Note:          e.Note,
		}
	}
	return detail, nil
}

// Delete removes the employee and its salary history in one transaction.
// Direct reports keep existing with their manager cleared.
func (s *service) Delete(ctx context.Context, id string) error {
	logger := s.log(ctx)
	logger.Debug("delete employee requested", zap.String("employee_id", id))

	emplID, ok := parseID(id)
	if !ok {
		return employeeerrors.ErrEmployeeNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, emplID); err != nil {
			logger.Warn("delete employee lookup failed", zap.Uint("employee_id", emplID), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := s.salaries.WithTx(tx).DeleteByEmployee(ctx, emplID); err != nil {
			logger.Error("delete salary history failed", zap.Uint("employee_id", emplID), zap.Error(err))
			return err
		}

		if err := qtx.ClearManager(ctx, emplID); err != nil {
			logger.Error("clear manager references failed", zap.Uint("employee_id", emplID), zap.Error(err))
			return err
		}

		if err := qtx.Delete(ctx, emplID); err != nil {
			logger.Error("delete employee failed", zap.Uint("employee_id", emplID), zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("delete employee success", zap.Uint("employee_id", emplID))
	return nil
}

// buildEmployee converts the textual form into an entity and the optional
// joining salary. Conversion failures are client errors.
func buildEmployee(req CreateEmployeeRequest) (*Employee, *float64, error) {
	departmentID, err := parseUint(req.DepartmentID)
	if err != nil {
		return nil, nil, err
	}
	roleID, err := parseUint(req.RoleID)
	if err != nil {
		return nil, nil, err
	}

	var managerID *uint
	if v := strings.TrimSpace(req.ManagerID); v != "" {
		id, err := parseUint(v)
		if err != nil {
			return nil, nil, err
		}
		managerID = &id
	}

	var dob *time.Time
	if v := strings.TrimSpace(req.DateOfBirth); v != "" {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			return nil, nil, apperror.WithCause(employeeerrors.ErrInvalidDate, err)
		}
		dob = &d
	}

	hireDate, err := time.Parse(DateLayout, strings.TrimSpace(req.HireDate))
	if err != nil {
		return nil, nil, apperror.WithCause(employeeerrors.ErrInvalidDate, err)
	}

	var salary *float64
	if v := strings.TrimSpace(req.Salary); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, apperror.WithCause(employeeerrors.ErrInvalidNumber, err)
		}
		salary = &amount
	}

	return &Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  dob,
		HireDate:     hireDate,
		DepartmentID: departmentID,
		RoleID:       roleID,
		IsActive:     true,
		ManagerID:    managerID,
	}, salary, nil
}

func parseUint(v string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 0)
	if err != nil {
		return 0, apperror.WithCause(employeeerrors.ErrInvalidNumber, err)
	}
	return uint(n), nil
}

func parseID(v string) (uint, bool) {
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		FullName:     empl.FullName(),
		Email:        empl.Email,
		Phone:        empl.Phone,
		HireDate:     empl.HireDate.Format(DateLayout),
		IsActive:     empl.IsActive,
		DepartmentID: empl.DepartmentID,
		RoleID:       empl.RoleID,
		ManagerID:    empl.ManagerID,
	}
	if empl.DateOfBirth != nil {
		resp.DateOfBirth = empl.DateOfBirth.Format(DateLayout)
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	if empl.Role != nil {
		resp.RoleTitle = empl.Role.Title
	}
	if empl.Manager != nil {
		resp.ManagerName = empl.Manager.FullName()
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapToSummary(empl Employee) EmployeeSummaryResponse {
	summary := EmployeeSummaryResponse{
		ID:    empl.ID,
		Name:  empl.FullName(),
		Email: empl.Email,
	}
	if empl.Department != nil {
		name := empl.Department.Name
		summary.Department = &name
	}
	if empl.Role != nil {
		title := empl.Role.Title
		summary.Role = &title
	}
	return summary
}

package salaryhistory

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_history_repo.go -destination=mock/salary_history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *SalaryHistory) error
	FindByEmployee(ctx context.Context, employeeID uint) ([]SalaryHistory, error)
	DeleteByEmployee(ctx context.Context, employeeID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, entry *SalaryHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByEmployee returns entries in insertion order, not by effective date.
func (r *repository) FindByEmployee(ctx context.Context, employeeID uint) ([]SalaryHistory, error) {
	var entries []SalaryHistory
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteByEmployee(ctx context.Context, employeeID uint) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&SalaryHistory{}).Error
}

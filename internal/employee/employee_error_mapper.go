package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.WithCause(employeeerrors.ErrEmployeeAlreadyExists, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.WithCause(employeeerrors.ErrInvalidReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.WithCause(employeeerrors.ErrEmployeeAlreadyExists, err)
		case pgForeignKeyViolation:
			return apperror.WithCause(employeeerrors.ErrInvalidReference, err)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return apperror.WithCause(employeeerrors.ErrEmployeeAlreadyExists, err)
		case sqlite3.ErrConstraintForeignKey:
			return apperror.WithCause(employeeerrors.ErrInvalidReference, err)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return apperror.WithCause(employeeerrors.ErrEmployeeAlreadyExists, err)
	}
	if strings.Contains(errMsg, "unique constraint failed: employees.email") {
		return apperror.WithCause(employeeerrors.ErrEmployeeAlreadyExists, err)
	}

	return err
}

package employee

import (
	"errors"
	"fmt"
	"testing"

	employeeerrors "go-employees/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, employeeerrors.ErrEmployeeNotFound},
		{"wrapped not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), employeeerrors.ErrEmployeeNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, employeeerrors.ErrEmployeeAlreadyExists},
		{"translated fk", gorm.ErrForeignKeyViolated, employeeerrors.ErrInvalidReference},
		{"postgres unique", &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}, employeeerrors.ErrEmployeeAlreadyExists},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, employeeerrors.ErrInvalidReference},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, employeeerrors.ErrEmployeeAlreadyExists},
		{"sqlite fk", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, employeeerrors.ErrInvalidReference},
		{"message fallback", errors.New("UNIQUE constraint failed: employees.email"), employeeerrors.ErrEmployeeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRepositoryError(tt.err), tt.want)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil))
	})

	t.Run("unknown passes through", func(t *testing.T) {
		err := errors.New("disk I/O error")
		assert.Same(t, err, mapRepositoryError(err))
	})
}

package seed

import (
	"context"
	"fmt"
	"time"

	"go-employees/internal/department"
	"go-employees/internal/employee"
	"go-employees/internal/role"
	"go-employees/internal/salaryhistory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// models lists every table, parents first.
func models() []any {
	return []any{
		&department.Department{},
		&role.Role{},
		&employee.Employee{},
		&salaryhistory.SalaryHistory{},
	}
}

// Reset drops and recreates the schema, then loads the fixture data.
// Anything stored before is lost.
func Reset(ctx context.Context, db *gorm.DB, logger ...*zap.Logger) error {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}

	if err := Recreate(ctx, db); err != nil {
		return err
	}
	l.Info("schema recreated")

	if err := Load(ctx, db); err != nil {
		return err
	}
	l.Info("fixtures loaded")
	return nil
}

// Recreate drops every table, children first, and migrates them again.
func Recreate(ctx context.Context, db *gorm.DB) error {
	ms := models()
	migrator := db.WithContext(ctx).Migrator()
	for i := len(ms) - 1; i >= 0; i-- {
		if err := migrator.DropTable(ms[i]); err != nil {
			return fmt.Errorf("drop %T: %w", ms[i], err)
		}
	}
	if err := db.WithContext(ctx).AutoMigrate(ms...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Load inserts the sample departments, roles, employees and salary rows.
// None of the seeded employees has a manager.
func Load(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		depts := department.NewRepository(tx)
		roles := role.NewRepository(tx)
		empls := employee.NewRepository(tx)
		salaries := salaryhistory.NewRepository(tx)

		engineering := &department.Department{Name: "Engineering", Location: "Bengaluru"}
		hr := &department.Department{Name: "HR", Location: "Mumbai"}
		finance := &department.Department{Name: "Finance", Location: "Delhi"}
		for _, d := range []*department.Department{engineering, hr, finance} {
			if err := depts.Create(ctx, d); err != nil {
				return fmt.Errorf("seed department %s: %w", d.Name, err)
			}
		}

		engineer := &role.Role{Title: "Software Engineer", Grade: "L2"}
		senior := &role.Role{Title: "Senior Software Engineer", Grade: "L3"}
		hrExec := &role.Role{Title: "HR Executive", Grade: "L2"}
		for _, r := range []*role.Role{engineer, senior, hrExec} {
			if err := roles.Create(ctx, r); err != nil {
				return fmt.Errorf("seed role %s: %w", r.Title, err)
			}
		}

		anitaDOB := day(1992, time.March, 10)
		rohitDOB := day(1988, time.November, 5)
		soniaDOB := day(1995, time.August, 20)
		anita := &employee.Employee{
			FirstName: "Anita", LastName: "Sharma", Email: "anita.sharma@example.com",
			Phone: "+91-9876500001", DateOfBirth: &anitaDOB, HireDate: day(2021, time.June, 15),
			DepartmentID: engineering.ID, RoleID: engineer.ID, IsActive: true,
		}
		rohit := &employee.Employee{
			FirstName: "Rohit", LastName: "Patel", Email: "rohit.patel@example.com",
			Phone: "+91-9876500002", DateOfBirth: &rohitDOB, HireDate: day(2019, time.April, 1),
			DepartmentID: engineering.ID, RoleID: senior.ID, IsActive: true,
		}
		sonia := &employee.Employee{
			FirstName: "Sonia", LastName: "Kapoor", Email: "sonia.kapoor@example.com",
			Phone: "+91-9876500003", DateOfBirth: &soniaDOB, HireDate: day(2023, time.January, 20),
			DepartmentID: hr.ID, RoleID: hrExec.ID, IsActive: true,
		}
		for _, e := range []*employee.Employee{anita, rohit, sonia} {
			if err := empls.Create(ctx, e); err != nil {
				return fmt.Errorf("seed employee %s: %w", e.Email, err)
			}
		}

		entries := []*salaryhistory.SalaryHistory{
			{EmployeeID: anita.ID, EffectiveDate: day(2021, time.June, 15), Salary: 45000, Note: "Joining"},
			{EmployeeID: anita.ID, EffectiveDate: day(2022, time.July, 1), Salary: 50000, Note: "Increment"},
			{EmployeeID: rohit.ID, EffectiveDate: day(2019, time.April, 1), Salary: 90000, Note: "Joining"},
		}
		for _, s := range entries {
			if err := salaries.Create(ctx, s); err != nil {
				return fmt.Errorf("seed salary for employee %d: %w", s.EmployeeID, err)
			}
		}
		return nil
	})
}

package employee

import (
	"time"

	"go-employees/internal/department"
	"go-employees/internal/role"
	"go-employees/internal/salaryhistory"
)

type Employee struct {
	ID           uint       `gorm:"primaryKey"`
	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100;not null"`
	Email        string     `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Phone        string     `gorm:"size:50"`
	DateOfBirth  *time.Time `gorm:"column:dob;type:date"`
	HireDate     time.Time  `gorm:"type:date;not null"`
	DepartmentID uint       `gorm:"not null"`
	RoleID       uint       `gorm:"not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	// ManagerID points at another employee. Nothing prevents cycles.
	ManagerID *uint

	Department *department.Department `gorm:"foreignKey:DepartmentID"`
	Role       *role.Role             `gorm:"foreignKey:RoleID"`
	Manager    *Employee              `gorm:"foreignKey:ManagerID"`

	// Salaries is only declared so migrations emit salary_history's foreign
	// key. Rows are written and removed through salaryhistory.Repository.
	Salaries []salaryhistory.SalaryHistory `gorm:"foreignKey:EmployeeID"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

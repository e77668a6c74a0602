package employee

// CreateEmployeeRequest is bound from the creation form. Ids, dates and the
// salary arrive as text and are converted by the service.
type CreateEmployeeRequest struct {
	FirstName    string `form:"first_name" binding:"required"`
	LastName     string `form:"last_name" binding:"required"`
	Email        string `form:"email" binding:"required"`
	Phone        string `form:"phone"`
	DateOfBirth  string `form:"dob"`
	HireDate     string `form:"hire_date" binding:"required"`
	DepartmentID string `form:"department_id" binding:"required"`
	RoleID       string `form:"role_id" binding:"required"`
	ManagerID    string `form:"manager_id"`
	Salary       string `form:"salary"`
}

type EmployeeResponse struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	DateOfBirth    string `json:"dob,omitempty"`
	HireDate       string `json:"hire_date"`
	IsActive       bool   `json:"is_active"`
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	RoleID         uint   `json:"role_id"`
	RoleTitle      string `json:"role_title,omitempty"`
	ManagerID      *uint  `json:"manager_id,omitempty"`
	ManagerName    string `json:"manager_name,omitempty"`
}

type SalaryEntryResponse struct {
	EffectiveDate string  `json:"effective_date"`
	Salary        float64 `json:"salary"`
	Note          string  `json:"note"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	Salaries []SalaryEntryResponse `json:"salaries"`
}

// EmployeeSummaryResponse is the flat record served by /api/employees.
type EmployeeSummaryResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
}

type OptionResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type FormOptionsResponse struct {
	Departments []OptionResponse `json:"departments"`
	Roles       []OptionResponse `json:"roles"`
	Managers    []OptionResponse `json:"managers"`
}

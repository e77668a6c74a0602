package salaryhistory

import "time"

// SalaryHistory is an append-only salary value effective from a date.
type SalaryHistory struct {
	ID            uint      `gorm:"primaryKey"`
	EmployeeID    uint      `gorm:"not null;index"`
	EffectiveDate time.Time `gorm:"type:date;not null"`
	Salary        float64   `gorm:"not null"`
	Note          string    `gorm:"size:255"`
}

func (SalaryHistory) TableName() string {
	return "salary_history"
}

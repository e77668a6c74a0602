package department

type Department struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null;uniqueIndex:uq_department_name"`
	Location string `gorm:"size:255"`
}

func (Department) TableName() string {
	return "departments"
}

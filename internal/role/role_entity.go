package role

// Role is a job title and grade, independent of department.
type Role struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:255;not null"`
	Grade string `gorm:"size:50"`
}

func (Role) TableName() string {
	return "roles"
}

package models

type Department struct {
	DeptID uint    `gorm:"column:dept_id;primaryKey;autoIncrement" json:"dept_id"`
	Name   string  `gorm:"type:text;not null;unique" json:"name"`
	Email  *string `gorm:"type:text" json:"email"`
	Phone  *string `gorm:"type:text" json:"phone"`
}

func (Department) TableName() string {
	return "department"
}

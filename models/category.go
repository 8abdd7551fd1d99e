package models

type Category struct {
	CategoryID      uint    `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name            string  `gorm:"type:text;not null;unique" json:"name"`
	Description     *string `gorm:"type:text" json:"description"`
	DefaultSLAHours int     `gorm:"column:default_sla_hours;check:chk_sla_hours_positive,default_sla_hours > 0" json:"default_sla_hours"`
}

func (Category) TableName() string {
	return "category"
}

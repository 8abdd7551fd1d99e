package models

type ServiceArea struct {
	AreaID  uint   `gorm:"column:area_id;primaryKey;autoIncrement" json:"area_id"`
	Name    string `gorm:"type:text;not null;unique" json:"name"`
	Geojson []byte `gorm:"type:jsonb" json:"-"`
	DeptID  uint   `gorm:"column:dept_id;not null;unique" json:"dept_id"`

	Department Department `gorm:"foreignKey:DeptID;references:DeptID" json:"-"`
}

func (ServiceArea) TableName() string {
	return "service_area"
}

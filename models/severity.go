package models

type Severity struct {
	SeverityID uint    `gorm:"column:severity_id;primaryKey;autoIncrement" json:"severity_id"`
	Label      string  `gorm:"type:text;not null" json:"label"`
	Weight     float64 `gorm:"type:decimal(6,2);not null;default:1.0;check:chk_weight_positive,weight > 0" json:"weight"`
}

func (Severity) TableName() string {
	return "severity"
}

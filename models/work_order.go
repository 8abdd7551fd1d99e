package models

import (
	"time"
)

type WorkOrder struct {
	WoID      uint      `gorm:"column:wo_id;primaryKey;autoIncrement" json:"wo_id"`
	ReportID  uint      `gorm:"column:report_id;not null;index" json:"report_id"`
	DeptID    uint      `gorm:"column:dept_id;not null" json:"dept_id"`
	Summary   *string   `gorm:"type:text" json:"summary"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (WorkOrder) TableName() string {
	return "work_order"
}

// WorkPart is a second-order dependent: it references the report only
// through its work order, so the cascade removes these rows first.
type WorkPart struct {
	PartID   uint    `gorm:"column:part_id;primaryKey;autoIncrement" json:"part_id"`
	WoID     uint    `gorm:"column:wo_id;not null;index" json:"wo_id"`
	Name     string  `gorm:"type:text;not null" json:"name"`
	Quantity int     `gorm:"not null;default:1" json:"quantity"`
	UnitCost float64 `gorm:"column:unit_cost;type:decimal(10,2)" json:"unit_cost"`
}

func (WorkPart) TableName() string {
	return "work_part"
}

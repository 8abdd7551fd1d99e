package models

import (
	"time"
)

type SLAClock struct {
	SLAID     uint       `gorm:"column:sla_id;primaryKey;autoIncrement" json:"sla_id"`
	ReportID  uint       `gorm:"column:report_id;not null;index" json:"report_id"`
	StartedAt time.Time  `gorm:"column:started_at;not null" json:"started_at"`
	DueAt     *time.Time `gorm:"column:due_at" json:"due_at"`
	StoppedAt *time.Time `gorm:"column:stopped_at" json:"stopped_at"`
	Breached  bool       `gorm:"not null;default:false" json:"breached"`
}

func (SLAClock) TableName() string {
	return "sla_clock"
}

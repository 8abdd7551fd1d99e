package models

import (
	"time"
)

// DuplicateLink can reference a report from either side, so the cascade
// must cover both columns.
type DuplicateLink struct {
	LinkID            uint      `gorm:"column:link_id;primaryKey;autoIncrement" json:"link_id"`
	PrimaryReportID   uint      `gorm:"column:primary_report_id;not null;index" json:"primary_report_id"`
	DuplicateReportID uint      `gorm:"column:duplicate_report_id;not null;index" json:"duplicate_report_id"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (DuplicateLink) TableName() string {
	return "duplicate_link"
}

package models

import (
	"time"
)

// StatusUpdate is one audit-trail entry. Rows are append-only: nothing in
// the codebase updates or deletes them except the report cascade delete.
type StatusUpdate struct {
	StatusID uint    `gorm:"column:status_id;primaryKey;autoIncrement" json:"status_id"`
	ReportID uint    `gorm:"column:report_id;not null;index" json:"report_id"`
	Status   string  `gorm:"type:text;not null;check:chk_status_update_status,status IN ('SUBMITTED','TRIAGED','IN_PROGRESS','ON_HOLD','RESOLVED','CLOSED','MERGED')" json:"status"`
	Note     *string `gorm:"type:text" json:"note"`

	ChangedBy uint      `gorm:"column:changed_by;not null" json:"changed_by"`
	ChangedAt time.Time `gorm:"column:changed_at;not null;autoCreateTime" json:"changed_at"`
}

func (StatusUpdate) TableName() string {
	return "status_update"
}

package models

import (
	"time"
)

type Assignment struct {
	AssignmentID   uint       `gorm:"column:assignment_id;primaryKey;autoIncrement" json:"assignment_id"`
	ReportID       uint       `gorm:"column:report_id;not null;index" json:"report_id"`
	DeptID         uint       `gorm:"column:dept_id;not null" json:"dept_id"`
	AssigneeUserID *uint      `gorm:"column:assignee_user_id" json:"assignee_user_id"`
	AssignedAt     time.Time  `gorm:"column:assigned_at;not null" json:"assigned_at"`
	AcceptedAt     *time.Time `gorm:"column:accepted_at" json:"accepted_at"`
	// No default tag: callers set this explicitly, and a tagged default
	// would make GORM drop explicit false values from the insert.
	IsActive bool `gorm:"not null" json:"is_active"`
}

func (Assignment) TableName() string {
	return "assignment"
}

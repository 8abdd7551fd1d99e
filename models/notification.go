package models

import (
	"time"
)

type Notification struct {
	NotificationID uint       `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	ReportID       uint       `gorm:"column:report_id;not null;index" json:"report_id"`
	UserID         uint       `gorm:"column:user_id;not null" json:"user_id"`
	Message        string     `gorm:"type:text;not null" json:"message"`
	SentAt         *time.Time `gorm:"column:sent_at" json:"sent_at"`
	CreatedAt      time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notification"
}

package models

import (
	"time"
)

// Dependent tables carry a plain report_id column instead of a mapped
// association: the store has no declarative ON DELETE CASCADE for them, so
// the deletion coordinator purges each one explicitly.

type ReportMedia struct {
	MediaID    uint      `gorm:"column:media_id;primaryKey;autoIncrement" json:"media_id"`
	ReportID   uint      `gorm:"column:report_id;not null;index" json:"report_id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	MimeType   *string   `gorm:"column:mime_type;type:text" json:"mime_type"`
	UploadedBy *uint     `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ReportMedia) TableName() string {
	return "report_media"
}

package models

import (
	"time"
)

type Comment struct {
	CommentID uint      `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	ReportID  uint      `gorm:"column:report_id;not null;index" json:"report_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comment"
}

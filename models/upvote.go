package models

import (
	"time"
)

type Upvote struct {
	UpvoteID  uint      `gorm:"column:upvote_id;primaryKey;autoIncrement" json:"upvote_id"`
	ReportID  uint      `gorm:"column:report_id;not null;uniqueIndex:uniq_upvote_report_user" json:"report_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:uniq_upvote_report_user" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Upvote) TableName() string {
	return "upvote"
}

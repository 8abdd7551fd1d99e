package models

import (
	"time"
)

type Subscription struct {
	SubscriptionID uint      `gorm:"column:subscription_id;primaryKey;autoIncrement" json:"subscription_id"`
	ReportID       uint      `gorm:"column:report_id;not null;index" json:"report_id"`
	UserID         uint      `gorm:"column:user_id;not null" json:"user_id"`
	Channel        string    `gorm:"type:text;not null;default:'EMAIL'" json:"channel"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscription"
}

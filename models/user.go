package models

import (
	"time"
)

type User struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        *string   `gorm:"type:text;unique" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Phone        *string   `gorm:"type:text" json:"phone"`
	Role         string    `gorm:"type:text;not null;default:'RESIDENT'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

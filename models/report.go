package models

import (
	"time"
)

type Report struct {
	ReportID    uint     `gorm:"column:report_id;primaryKey;autoIncrement" json:"report_id"`
	Title       string   `gorm:"type:text;not null" json:"title"`
	Description *string  `gorm:"type:text" json:"description"`
	Latitude    *float64 `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude   *float64 `gorm:"type:decimal(9,6)" json:"longitude"`
	Geohash     *string  `gorm:"type:text" json:"geohash,omitempty"`
	Address     *string  `gorm:"type:text" json:"address"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// The default applies store-side on insert; callers never supply the
	// initial status. The named CHECK stands in for the report_status enum
	// domain so invalid values are rejected by the store itself.
	CurrentStatus string `gorm:"column:current_status;not null;default:'IN_PROGRESS';check:chk_report_status,current_status IN ('SUBMITTED','TRIAGED','IN_PROGRESS','ON_HOLD','RESOLVED','CLOSED','MERGED')" json:"current_status"`

	CreatedBy  uint `gorm:"column:created_by;not null" json:"created_by"`
	CategoryID uint `gorm:"column:category_id;not null" json:"category_id"`
	SeverityID uint `gorm:"column:severity_id;not null" json:"severity_id"`
	AreaID     uint `gorm:"column:area_id;not null" json:"area_id"`

	Creator       User           `gorm:"foreignKey:CreatedBy;references:UserID" json:"-"`
	Category      Category       `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
	Severity      Severity       `gorm:"foreignKey:SeverityID;references:SeverityID" json:"-"`
	ServiceArea   ServiceArea    `gorm:"foreignKey:AreaID;references:AreaID" json:"-"`
	StatusUpdates []StatusUpdate `gorm:"foreignKey:ReportID;references:ReportID" json:"-"`
}

func (Report) TableName() string {
	return "report"
}

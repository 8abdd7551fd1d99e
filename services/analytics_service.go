package services

import (
	"context"
	"errors"

	"github.com/grid-watch/api-go/models"
	"gorm.io/gorm"
)

type HotSpot struct {
	AreaID      uint  `json:"area_id"`
	CategoryID  uint  `json:"category_id"`
	ReportCount int64 `json:"report_count"`
}

type ResolutionTimes struct {
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// HotSpots counts reports per (area, category) pair.
func (s *AnalyticsService) HotSpots(ctx context.Context) ([]HotSpot, error) {
	spots := []HotSpot{}
	err := s.DB.WithContext(ctx).
		Model(&models.Report{}).
		Select("report.area_id, report.category_id, COUNT(report.report_id) AS report_count").
		Joins("JOIN service_area ON service_area.area_id = report.area_id").
		Joins("JOIN category ON category.category_id = report.category_id").
		Group("report.area_id, report.category_id").
		Order("report.area_id, report.category_id").
		Scan(&spots).Error
	if err != nil {
		return nil, err
	}
	return spots, nil
}

// AvgResolutionTime averages, in days, the span between an assignment
// being accepted and the report's latest RESOLVED or CLOSED status change.
// Only inactive assignments with an accepted_at count; no data means 0.0.
// The interval arithmetic happens here rather than in SQL so the same
// query runs on both Postgres and the SQLite test store.
func (s *AnalyticsService) AvgResolutionTime(ctx context.Context) (*ResolutionTimes, error) {
	var assignments []models.Assignment
	err := s.DB.WithContext(ctx).
		Where("is_active = ? AND accepted_at IS NOT NULL", false).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	var totalDays float64
	var resolved int
	for _, a := range assignments {
		var last models.StatusUpdate
		err := s.DB.WithContext(ctx).
			Where("report_id = ? AND status IN ?", a.ReportID, []string{models.StatusResolved, models.StatusClosed}).
			Order("changed_at DESC, status_id DESC").
			First(&last).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		totalDays += last.ChangedAt.Sub(*a.AcceptedAt).Hours() / 24
		resolved++
	}

	out := &ResolutionTimes{}
	if resolved > 0 {
		out.AvgResolutionDays = totalDays / float64(resolved)
	}
	return out, nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/grid-watch/api-go/models"
	"gorm.io/gorm"
)

// ReportFilters are independently optional; every supplied filter narrows
// the result (logical AND). Zero values mean "not supplied".
type ReportFilters struct {
	Search     string
	AreaID     uint
	CategoryID uint
	Status     string
}

type ReportSummary struct {
	ReportID      uint      `json:"report_id"`
	Title         string    `json:"title"`
	CurrentStatus string    `json:"current_status"`
	CreatedAt     time.Time `json:"created_at"`
	CategoryName  string    `json:"category_name"`
	AreaName      string    `json:"area_name"`
	SeverityLabel string    `json:"severity_label"`
}

type ServiceAreaOut struct {
	AreaID uint   `json:"area_id"`
	Name   string `json:"name"`
}

type CategoryOut struct {
	CategoryID      uint    `json:"category_id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	DefaultSLAHours int     `json:"default_sla_hours"`
}

type SeverityOut struct {
	SeverityID uint    `json:"severity_id"`
	Label      string  `json:"label"`
	Weight     float64 `json:"weight"`
}

type StatusUpdateOut struct {
	StatusID  uint      `json:"status_id"`
	Status    string    `json:"status"`
	Note      *string   `json:"note"`
	ChangedAt time.Time `json:"changed_at"`
}

type ReportDetail struct {
	ReportID      uint      `json:"report_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Address       *string   `json:"address"`
	CurrentStatus string    `json:"current_status"`
	CreatedAt     time.Time `json:"created_at"`

	Category    CategoryOut    `json:"category"`
	ServiceArea ServiceAreaOut `json:"service_area"`
	Severity    SeverityOut    `json:"severity"`

	StatusHistory []StatusUpdateOut `json:"status_history"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// List returns report summaries with the reference names projected via
// inner joins, newest first. Ties on created_at keep insertion order.
func (s *ReportService) List(ctx context.Context, filters ReportFilters) ([]ReportSummary, error) {
	q := s.DB.WithContext(ctx).
		Model(&models.Report{}).
		Select("report.report_id, report.title, report.current_status, report.created_at, " +
			"category.name AS category_name, service_area.name AS area_name, severity.label AS severity_label").
		Joins("JOIN service_area ON service_area.area_id = report.area_id").
		Joins("JOIN category ON category.category_id = report.category_id").
		Joins("JOIN severity ON severity.severity_id = report.severity_id")

	if filters.Search != "" {
		q = q.Where("LOWER(report.title) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}
	if filters.AreaID != 0 {
		q = q.Where("report.area_id = ?", filters.AreaID)
	}
	if filters.CategoryID != 0 {
		q = q.Where("report.category_id = ?", filters.CategoryID)
	}
	if filters.Status != "" {
		q = q.Where("report.current_status = ?", filters.Status)
	}

	summaries := []ReportSummary{}
	err := q.Order("report.created_at DESC, report.report_id ASC").Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetDetail loads one report with its reference rows and the complete
// status history, oldest change first.
func (s *ReportService) GetDetail(ctx context.Context, reportID uint) (*ReportDetail, error) {
	var report models.Report
	err := s.DB.WithContext(ctx).
		Preload("Category").
		Preload("Severity").
		Preload("ServiceArea").
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC, status_id ASC")
		}).
		First(&report, reportID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return buildReportDetail(&report), nil
}

// Create persists the report and re-reads it with all joins so the caller
// gets the same shape as GetDetail, including the store-assigned id,
// timestamp and default status.
func (s *ReportService) Create(ctx context.Context, report *models.Report) (*ReportDetail, error) {
	if err := s.DB.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, report.ReportID)
}

func buildReportDetail(report *models.Report) *ReportDetail {
	history := make([]StatusUpdateOut, 0, len(report.StatusUpdates))
	for _, su := range report.StatusUpdates {
		history = append(history, StatusUpdateOut{
			StatusID:  su.StatusID,
			Status:    su.Status,
			Note:      su.Note,
			ChangedAt: su.ChangedAt,
		})
	}

	return &ReportDetail{
		ReportID:      report.ReportID,
		Title:         report.Title,
		Description:   report.Description,
		Latitude:      report.Latitude,
		Longitude:     report.Longitude,
		Address:       report.Address,
		CurrentStatus: report.CurrentStatus,
		CreatedAt:     report.CreatedAt,
		Category: CategoryOut{
			CategoryID:      report.Category.CategoryID,
			Name:            report.Category.Name,
			Description:     report.Category.Description,
			DefaultSLAHours: report.Category.DefaultSLAHours,
		},
		ServiceArea: ServiceAreaOut{
			AreaID: report.ServiceArea.AreaID,
			Name:   report.ServiceArea.Name,
		},
		Severity: SeverityOut{
			SeverityID: report.Severity.SeverityID,
			Label:      report.Severity.Label,
			Weight:     report.Severity.Weight,
		},
		StatusHistory: history,
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/models"
	"github.com/grid-watch/api-go/services"
	"gorm.io/gorm"
)

type ReportController struct {
	Reports  *services.ReportService
	Statuses *services.StatusService
	Deleter  *services.DeletionService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		Reports:  services.NewReportService(db),
		Statuses: services.NewStatusService(db),
		Deleter:  services.NewDeletionService(db),
	}
}

type ListReportsQuery struct {
	Search     string `form:"search"`
	AreaID     uint   `form:"area_id"`
	CategoryID uint   `form:"category_id"`
	Status     string `form:"status"`
}

type CreateReportRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	SeverityID  uint     `json:"severity_id" binding:"required"`
	AreaID      uint     `json:"area_id" binding:"required"`
	CreatedBy   uint     `json:"created_by" binding:"required"`
}

type UpdateStatusRequest struct {
	NewStatus string  `json:"new_status" binding:"required"`
	Note      *string `json:"note"`
	ChangedBy uint    `json:"changed_by" binding:"required"`
}

// ListReports returns summaries, newest first, narrowed by any combination
// of search/area_id/category_id/status.
func (rc *ReportController) ListReports(c *gin.Context) {
	var query ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	summaries, err := rc.Reports.List(c.Request.Context(), services.ReportFilters{
		Search:     query.Search,
		AreaID:     query.AreaID,
		CategoryID: query.CategoryID,
		Status:     query.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (rc *ReportController) GetReport(c *gin.Context) {
	reportID, ok := pathID(c, "report_id")
	if !ok {
		return
	}

	detail, err := rc.Reports.GetDetail(c.Request.Context(), reportID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateReport persists the report and answers 201 with the same detail
// shape as GetReport. current_status comes from the store default, never
// from the client.
func (rc *ReportController) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	report := models.Report{
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		CategoryID:  req.CategoryID,
		SeverityID:  req.SeverityID,
		AreaID:      req.AreaID,
		CreatedBy:   req.CreatedBy,
	}

	detail, err := rc.Reports.Create(c.Request.Context(), &report)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// UpdateReportStatus records a transition and returns the created audit
// entry. Unknown status values surface as 422 once the store rejects them.
func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	reportID, ok := pathID(c, "report_id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	update, err := rc.Statuses.UpdateStatus(c.Request.Context(), reportID, services.StatusChangeInput{
		NewStatus: req.NewStatus,
		Note:      req.Note,
		ChangedBy: req.ChangedBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, update)
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	reportID, ok := pathID(c, "report_id")
	if !ok {
		return
	}

	if err := rc.Deleter.Delete(c.Request.Context(), reportID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/models"
	"github.com/grid-watch/api-go/services"
	"gorm.io/gorm"
)

// RefDataController serves the lookup tables. Pure pass-through reads, so
// it talks to the store directly.
type RefDataController struct {
	DB *gorm.DB
}

func NewRefDataController(db *gorm.DB) *RefDataController {
	return &RefDataController{DB: db}
}

func (rd *RefDataController) ListServiceAreas(c *gin.Context) {
	var areas []models.ServiceArea
	if err := rd.DB.WithContext(c.Request.Context()).Order("name").Find(&areas).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]services.ServiceAreaOut, 0, len(areas))
	for _, a := range areas {
		out = append(out, services.ServiceAreaOut{AreaID: a.AreaID, Name: a.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (rd *RefDataController) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := rd.DB.WithContext(c.Request.Context()).Order("name").Find(&categories).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]services.CategoryOut, 0, len(categories))
	for _, cat := range categories {
		out = append(out, services.CategoryOut{
			CategoryID:      cat.CategoryID,
			Name:            cat.Name,
			Description:     cat.Description,
			DefaultSLAHours: cat.DefaultSLAHours,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (rd *RefDataController) ListSeverities(c *gin.Context) {
	var severities []models.Severity
	if err := rd.DB.WithContext(c.Request.Context()).Order("weight DESC").Find(&severities).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]services.SeverityOut, 0, len(severities))
	for _, s := range severities {
		out = append(out, services.SeverityOut{SeverityID: s.SeverityID, Label: s.Label, Weight: s.Weight})
	}
	c.JSON(http.StatusOK, out)
}

func (rd *RefDataController) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReportStatuses)
}

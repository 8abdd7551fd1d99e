package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/services"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Analytics: services.NewAnalyticsService(db)}
}

func (ac *AnalyticsController) ListHotSpots(c *gin.Context) {
	spots, err := ac.Analytics.HotSpots(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (ac *AnalyticsController) GetResolutionTimes(c *gin.Context) {
	times, err := ac.Analytics.AvgResolutionTime(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, times)
}

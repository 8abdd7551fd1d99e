package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check pings the store; ok only when a round trip succeeds.
func (hc *HealthController) Check(c *gin.Context) {
	if err := hc.DB.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

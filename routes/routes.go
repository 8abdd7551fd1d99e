package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/controllers"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	reportController := controllers.NewReportController(db)
	refDataController := controllers.NewRefDataController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	healthController := controllers.NewHealthController(db)

	r.GET("/health", healthController.Check)

	SetupReportRoutes(r, reportController)
	SetupRefDataRoutes(r, refDataController)
	SetupAnalyticsRoutes(r, analyticsController)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Resource not found"})
	})
}

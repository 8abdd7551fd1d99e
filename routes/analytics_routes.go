package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/controllers"
)

func SetupAnalyticsRoutes(r *gin.Engine, analyticsController *controllers.AnalyticsController) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/hotspots", analyticsController.ListHotSpots)
		analytics.GET("/resolution-times", analyticsController.GetResolutionTimes)
	}
}

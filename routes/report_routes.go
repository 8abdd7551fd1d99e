package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/controllers"
)

func SetupReportRoutes(r *gin.Engine, reportController *controllers.ReportController) {
	reports := r.Group("/reports")
	{
		reports.GET("", reportController.ListReports)
		reports.POST("", reportController.CreateReport)
		reports.GET("/:report_id", reportController.GetReport)
		reports.PUT("/:report_id/status", reportController.UpdateReportStatus)
		reports.DELETE("/:report_id", reportController.DeleteReport)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/grid-watch/api-go/controllers"
)

func SetupRefDataRoutes(r *gin.Engine, refDataController *controllers.RefDataController) {
	r.GET("/service-areas", refDataController.ListServiceAreas)
	r.GET("/categories", refDataController.ListCategories)
	r.GET("/severities", refDataController.ListSeverities)
	r.GET("/statuses", refDataController.ListStatuses)
}

package routes

import (
	"uplift-be/controllers"

	"github.com/gin-gonic/gin"
)

// StatsRoutes sets up the dashboard stats endpoint.
func StatsRoutes(r *gin.Engine, stats *controllers.StatsController) {
	r.GET("/api/stats", stats.GetStats)
}

package routes

import (
	"uplift-be/controllers"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue endpoints. Reads are public; writes require a
// bearer token, and creation is additionally rate limited when a limiter is
// configured.
func IssueRoutes(r *gin.Engine, issues *controllers.IssueController, auth, limiter gin.HandlerFunc) {
	group := r.Group("/api/issues")
	{
		group.GET("", issues.GetIssues)
		group.GET("/reposted", issues.GetRepostedIssues)
		group.GET("/search", issues.SearchIssues)
		group.GET("/:id", issues.GetIssueDetails)

		create := []gin.HandlerFunc{auth}
		if limiter != nil {
			create = append(create, limiter)
		}
		group.POST("", append(create, issues.CreateIssue)...)

		group.PUT("/:id/status", auth, issues.UpdateIssueStatus)
		group.PUT("/:id/achievement", auth, issues.UpdateAchievement)
	}
}

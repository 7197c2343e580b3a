package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"uplift-be/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// On the detail endpoint, the newest issues are returned alongside the
// requested one; the requested issue itself is filtered out of that list.
const matchingIssuesCap = 5

// IssueController handles the issue endpoints.
type IssueController struct {
	repo  *models.IssueRepository
	stats *models.StatsAggregator
}

func NewIssueController(repo *models.IssueRepository, stats *models.StatsAggregator) *IssueController {
	return &IssueController{repo: repo, stats: stats}
}

// CreateIssue handles POST /api/issues.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input models.CreateIssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Status != "" && !models.ValidStatuses[input.Status] {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	// The authenticated account is the reporter unless one was named
	// explicitly.
	if userID, exists := c.Get("user_id"); exists && input.ReporterID == "" {
		if id, ok := userID.(string); ok {
			input.ReporterID = id
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	issueID, err := ic.repo.Create(ctx, input)
	if err != nil {
		log.WithError(err).Error("failed to create issue")
		respondError(c, http.StatusInternalServerError, "Error creating issue")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Issue created successfully",
		"issue_id": issueID,
	})
}

// GetIssues handles GET /api/issues with optional status filtering and
// pagination.
func (ic *IssueController) GetIssues(c *gin.Context) {
	limit, skip := parsePagination(c)
	status := c.Query("status")

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	issues, err := ic.repo.List(ctx, limit, skip, status)
	if err != nil {
		log.WithError(err).Error("failed to list issues")
		respondError(c, http.StatusInternalServerError, "Error fetching issues")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issues, "count": len(issues)})
}

// GetRepostedIssues handles GET /api/issues/reposted.
func (ic *IssueController) GetRepostedIssues(c *gin.Context) {
	limit, skip := parsePagination(c)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	issues, err := ic.repo.GetReposted(ctx, limit, skip)
	if err != nil {
		log.WithError(err).Error("failed to list reposted issues")
		respondError(c, http.StatusInternalServerError, "Error fetching reposted issues")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issues, "count": len(issues)})
}

// GetIssueDetails handles GET /api/issues/:id, returning the issue together
// with the latest other issues as its matching list.
func (ic *IssueController) GetIssueDetails(c *gin.Context) {
	issueID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	issue, err := ic.repo.GetByID(ctx, issueID)
	if err != nil {
		log.WithError(err).Error("failed to fetch issue")
		respondError(c, http.StatusInternalServerError, "Error fetching issue details")
		return
	}
	if issue == nil {
		respondError(c, http.StatusNotFound, "Issue not found")
		return
	}

	recent, err := ic.repo.List(ctx, matchingIssuesCap+1, 0, "")
	if err != nil {
		log.WithError(err).Error("failed to fetch matching issues")
		respondError(c, http.StatusInternalServerError, "Error fetching issue details")
		return
	}

	matching := make([]models.IssueWithPreview, 0, matchingIssuesCap)
	for _, candidate := range recent {
		if candidate.ID.Hex() == issueID {
			continue
		}
		if len(matching) == matchingIssuesCap {
			break
		}
		matching = append(matching, candidate)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"issue":           issue,
			"matching_issues": matching,
		},
	})
}

// UpdateIssueStatus handles PUT /api/issues/:id/status. After a successful
// write the dashboard snapshot is refreshed; a refresh failure is logged and
// never rolled back against the issue write.
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	issueID := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}
	if !models.ValidStatuses[input.Status] {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	updated, err := ic.repo.UpdateStatus(ctx, issueID, input.Status)
	if err != nil {
		log.WithError(err).Error("failed to update issue status")
		respondError(c, http.StatusInternalServerError, "Error updating issue status")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "Issue not found or not updated")
		return
	}

	if err := ic.stats.Persist(ctx); err != nil {
		log.WithError(err).Warn("failed to refresh dashboard stats")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Issue status updated successfully"})
}

// UpdateAchievement handles PUT /api/issues/:id/achievement. The write is
// performed regardless of the issue's current status.
func (ic *IssueController) UpdateAchievement(c *gin.Context) {
	issueID := c.Param("id")

	var input struct {
		Achievement string `json:"achievement" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Achievement text is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	updated, err := ic.repo.UpdateAchievement(ctx, issueID, input.Achievement)
	if err != nil {
		log.WithError(err).Error("failed to update achievement")
		respondError(c, http.StatusInternalServerError, "Error updating achievement")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "Issue not found or not updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Achievement updated successfully"})
}

// SearchIssues handles GET /api/issues/search?q=.
func (ic *IssueController) SearchIssues(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	issues, err := ic.repo.Search(ctx, query)
	if err != nil {
		log.WithError(err).Error("failed to search issues")
		respondError(c, http.StatusInternalServerError, "Error searching issues")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issues, "count": len(issues)})
}

func parsePagination(c *gin.Context) (int64, int64) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 50
	}
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		skip = 0
	}
	return limit, skip
}

package controllers

import (
	"context"
	"net/http"

	"uplift-be/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// StatsController serves the dashboard counters.
type StatsController struct {
	stats *models.StatsAggregator
}

func NewStatsController(stats *models.StatsAggregator) *StatsController {
	return &StatsController{stats: stats}
}

// GetStats handles GET /api/stats with a freshly computed snapshot.
func (sc *StatsController) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	stats, err := sc.stats.Compute(ctx)
	if err != nil {
		log.WithError(err).Error("failed to compute dashboard stats")
		respondError(c, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

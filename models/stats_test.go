package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStats(t *testing.T) {
	counts := map[string]int64{
		StatusSeen:      3,
		StatusVerified:  2,
		StatusCompleted: 1,
	}

	stats := buildStats(counts, 6)

	assert.Equal(t, int64(3), stats.ReportedIssues)
	assert.Equal(t, int64(5), stats.PendingIssues)
	assert.Equal(t, int64(2), stats.Verified)
	assert.Equal(t, int64(0), stats.OnHold)
	assert.Equal(t, int64(0), stats.InProgress)
	assert.Equal(t, int64(1), stats.Achievements)
	assert.Equal(t, int64(6), stats.TotalIssues)
}

func TestBuildStatsEmptyCollection(t *testing.T) {
	stats := buildStats(map[string]int64{}, 0)
	assert.Equal(t, DashboardStats{}, stats)
}

func TestBuildStatsToleratesUnknownStatus(t *testing.T) {
	counts := map[string]int64{
		StatusSeen: 1,
		"Triaged":  4,
	}

	stats := buildStats(counts, 5)

	assert.Equal(t, int64(1), stats.ReportedIssues)
	assert.Equal(t, int64(1), stats.PendingIssues)
	// The unknown label only shows up through the total.
	assert.Equal(t, int64(5), stats.TotalIssues)
}

func TestBuildStatsArchivedAndClosedOnlyInTotal(t *testing.T) {
	counts := map[string]int64{
		StatusSeen:     2,
		StatusArchived: 3,
		StatusClosed:   4,
	}

	stats := buildStats(counts, 9)

	assert.Equal(t, int64(2), stats.ReportedIssues)
	assert.Equal(t, int64(2), stats.PendingIssues)
	assert.Equal(t, int64(0), stats.Achievements)
	assert.Equal(t, int64(9), stats.TotalIssues)
}

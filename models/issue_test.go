package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"over a day collapses to whole days", 90000 * time.Second, "1 day ago"},
		{"exactly one day", 24 * time.Hour, "1 day ago"},
		{"multiple days", 72 * time.Hour, "3 days ago"},
		{"two hours", 7200 * time.Second, "2 hours ago"},
		{"exactly one hour", time.Hour, "1 hour ago"},
		{"hours within the current day", 23*time.Hour + 30*time.Minute, "23 hours ago"},
		{"under a minute", 45 * time.Second, "0 minutes ago"},
		{"one minute", 90 * time.Second, "1 minute ago"},
		{"many minutes", 42 * time.Minute, "42 minutes ago"},
		{"future timestamp clamps to zero", -3 * time.Minute, "0 minutes ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeAge(now.Add(-tt.elapsed), now))
		})
	}
}

func TestNewIssueDefaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	issue := newIssue(CreateIssueInput{
		Title:       "Pothole on Highway 101",
		Description: "Large pothole causing damage to vehicles.",
		Location:    "Highway 101, Mile Marker 45",
		Type:        "Road Maintenance",
	}, now)

	assert.Equal(t, StatusSeen, issue.Status)
	assert.Equal(t, "Medium", issue.Impact)
	assert.Equal(t, "Moderate", issue.Severity)
	assert.Equal(t, "Anonymous", issue.ReporterName)
	assert.NotNil(t, issue.Images)
	assert.Empty(t, issue.Images)
	assert.NotNil(t, issue.Coordinates)
	assert.Empty(t, issue.Coordinates)
	assert.False(t, issue.IsReposted)
	assert.Zero(t, issue.MatchingPostsCount)
	assert.Equal(t, now, issue.CreatedAt)
	assert.Equal(t, now, issue.UpdatedAt)
}

func TestNewIssueKeepsProvidedFields(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	issue := newIssue(CreateIssueInput{
		Title:              "Broken Street Light",
		Description:        "Light stopped working.",
		Location:           "Main Road",
		Type:               "Infrastructure",
		Impact:             "High",
		Severity:           "Critical",
		Status:             StatusVerified,
		ReporterName:       "John Smith",
		Images:             []string{"https://example.com/a.jpg"},
		Coordinates:        map[string]float64{"lat": 40.7128, "lng": -74.0060},
		MatchingPostsCount: 12,
	}, now)

	assert.Equal(t, StatusVerified, issue.Status)
	assert.Equal(t, "High", issue.Impact)
	assert.Equal(t, "Critical", issue.Severity)
	assert.Equal(t, "John Smith", issue.ReporterName)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, issue.Images)
	assert.Equal(t, 12, issue.MatchingPostsCount)
	// Repost flagging is not a creation-time concern.
	assert.False(t, issue.IsReposted)
}

func TestImageDerivation(t *testing.T) {
	assert.Nil(t, firstImage(nil))
	assert.Empty(t, thumbnails(nil))

	images := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}
	assert.Equal(t, "a.jpg", *firstImage(images))
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, thumbnails(images))
	assert.Equal(t, []string{"a.jpg"}, thumbnails(images[:1]))
}

func TestValidStatusesCoversFixedSet(t *testing.T) {
	for _, status := range []string{
		StatusSeen, StatusVerified, StatusOnHold, StatusInProgress,
		StatusCompleted, StatusArchived, StatusClosed,
	} {
		assert.True(t, ValidStatuses[status], status)
	}
	assert.False(t, ValidStatuses["Resolved"])
	assert.False(t, ValidStatuses[""])
}

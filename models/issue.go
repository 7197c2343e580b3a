package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Issue statuses. The lifecycle Seen → Verified → {On Hold ⇄ In Progress} →
// Completed → {Archived | Closed} is conventional, not enforced: any status
// may move to any other via a direct update.
const (
	StatusSeen       = "Seen"
	StatusVerified   = "Verified"
	StatusOnHold     = "On Hold"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusArchived   = "Archived"
	StatusClosed     = "Closed"
)

// ValidStatuses is the fixed set accepted at the API boundary.
var ValidStatuses = map[string]bool{
	StatusSeen:       true,
	StatusVerified:   true,
	StatusOnHold:     true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusArchived:   true,
	StatusClosed:     true,
}

// Issue represents a single reported civic problem.
type Issue struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description" json:"description"`
	Location           string             `bson:"location" json:"location"`
	Type               string             `bson:"type" json:"type"`
	Impact             string             `bson:"impact" json:"impact"`
	Severity           string             `bson:"severity" json:"severity"`
	Status             string             `bson:"status" json:"status"`
	ReporterID         string             `bson:"reporter_id,omitempty" json:"reporter_id,omitempty"`
	ReporterName       string             `bson:"reporter_name" json:"reporter_name"`
	Images             []string           `bson:"images" json:"images"`
	Coordinates        map[string]float64 `bson:"coordinates" json:"coordinates"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
	IsReposted         bool               `bson:"is_reposted" json:"is_reposted"`
	MatchingPostsCount int                `bson:"matching_posts_count" json:"matching_posts_count"`
	Achievement        string             `bson:"achievement,omitempty" json:"achievement,omitempty"`
}

// CreateIssueInput is the structured creation request. Title, description,
// location and type are required at the boundary; everything else is optional
// and defaulted on insert. MatchingPostsCount is caller-supplied and never
// recomputed here.
type CreateIssueInput struct {
	Title              string             `json:"title" binding:"required,max=200"`
	Description        string             `json:"description" binding:"required,max=2000"`
	Location           string             `json:"location" binding:"required,max=200"`
	Type               string             `json:"type" binding:"required,max=100"`
	Impact             string             `json:"impact,omitempty"`
	Severity           string             `json:"severity,omitempty"`
	Status             string             `json:"status,omitempty"`
	ReporterID         string             `json:"reporter_id,omitempty"`
	ReporterName       string             `json:"reporter_name,omitempty"`
	Images             []string           `json:"images,omitempty"`
	Coordinates        map[string]float64 `json:"coordinates,omitempty"`
	MatchingPostsCount int                `json:"matching_posts_count,omitempty"`
}

// newIssue builds the stored record from a creation request, applying the
// documented defaults. created_at and updated_at both start at now.
func newIssue(input CreateIssueInput, now time.Time) Issue {
	issue := Issue{
		Title:              input.Title,
		Description:        input.Description,
		Location:           input.Location,
		Type:               input.Type,
		Impact:             input.Impact,
		Severity:           input.Severity,
		Status:             input.Status,
		ReporterID:         input.ReporterID,
		ReporterName:       input.ReporterName,
		Images:             input.Images,
		Coordinates:        input.Coordinates,
		CreatedAt:          now,
		UpdatedAt:          now,
		IsReposted:         false,
		MatchingPostsCount: input.MatchingPostsCount,
	}

	if issue.Impact == "" {
		issue.Impact = "Medium"
	}
	if issue.Severity == "" {
		issue.Severity = "Moderate"
	}
	if issue.Status == "" {
		issue.Status = StatusSeen
	}
	if issue.ReporterName == "" {
		issue.ReporterName = "Anonymous"
	}
	if issue.Images == nil {
		issue.Images = []string{}
	}
	if issue.Coordinates == nil {
		issue.Coordinates = map[string]float64{}
	}

	return issue
}

// IssueWithPreview is a list row: the stored record plus the presentation
// fields derived at query time.
type IssueWithPreview struct {
	Issue
	Time     string  `json:"time"`
	HasImage bool    `json:"hasImage"`
	Image    *string `json:"image"`
}

// IssueDetail is the single-issue shape. Images[0] is the canonical preview;
// the first three entries are the thumbnails.
type IssueDetail struct {
	Issue
	Posted     string   `json:"posted"`
	HasImage   bool     `json:"hasImage"`
	MainImage  *string  `json:"mainImage"`
	Thumbnails []string `json:"thumbnails"`
}

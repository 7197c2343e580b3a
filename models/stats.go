package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardStats is the cached snapshot of per-status counters. Archived and
// Closed issues contribute to the total only.
type DashboardStats struct {
	ReportedIssues int64     `bson:"reported_issues" json:"reported_issues"`
	PendingIssues  int64     `bson:"pending_issues" json:"pending_issues"`
	Verified       int64     `bson:"verified" json:"verified"`
	OnHold         int64     `bson:"on_hold" json:"on_hold"`
	InProgress     int64     `bson:"in_progress" json:"in_progress"`
	Achievements   int64     `bson:"achievements" json:"achievements"`
	TotalIssues    int64     `bson:"total_issues" json:"total_issues"`
	UpdatedAt      time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// statsDocumentKey discriminates the singleton snapshot within the stats
// collection.
const statsDocumentKey = "dashboard"

type statsDocument struct {
	Type           string `bson:"type"`
	DashboardStats `bson:",inline"`
}

// StatsAggregator derives dashboard counters from the issues collection and
// caches them as a single upserted document. It is stateless apart from its
// collection handles.
type StatsAggregator struct {
	issues *mongo.Collection
	stats  *mongo.Collection
}

func NewStatsAggregator(db *mongo.Database) *StatsAggregator {
	return &StatsAggregator{
		issues: db.Collection("issues"),
		stats:  db.Collection("stats"),
	}
}

// Compute tallies the full collection by status. The result is a
// point-in-time snapshot with no isolation guarantee against concurrent
// writes.
func (a *StatsAggregator) Compute(ctx context.Context) (DashboardStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}

	cursor, err := a.issues.Aggregate(ctx, pipeline)
	if err != nil {
		return DashboardStats{}, err
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return DashboardStats{}, err
	}

	counts := make(map[string]int64, len(buckets))
	for _, bucket := range buckets {
		counts[bucket.Status] = bucket.Count
	}

	total, err := a.issues.CountDocuments(ctx, bson.M{})
	if err != nil {
		return DashboardStats{}, err
	}

	stats := buildStats(counts, total)
	stats.UpdatedAt = time.Now().UTC()
	return stats, nil
}

// buildStats maps raw status tallies onto the dashboard shape. Unknown status
// labels are tolerated; they surface in the total only.
func buildStats(counts map[string]int64, total int64) DashboardStats {
	return DashboardStats{
		ReportedIssues: counts[StatusSeen],
		PendingIssues:  counts[StatusSeen] + counts[StatusVerified],
		Verified:       counts[StatusVerified],
		OnHold:         counts[StatusOnHold],
		InProgress:     counts[StatusInProgress],
		Achievements:   counts[StatusCompleted],
		TotalIssues:    total,
	}
}

// Persist recomputes the snapshot and replaces the previous one under the
// fixed key. Concurrent callers converge last-write-wins; no history is kept.
func (a *StatsAggregator) Persist(ctx context.Context) error {
	stats, err := a.Compute(ctx)
	if err != nil {
		return err
	}

	_, err = a.stats.ReplaceOne(
		ctx,
		bson.M{"type": statsDocumentKey},
		statsDocument{Type: statsDocumentKey, DashboardStats: stats},
		options.Replace().SetUpsert(true),
	)
	return err
}

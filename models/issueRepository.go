package models

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchResultCap = 20

// IssueRepository provides access to the issues collection. It holds no state
// beyond the collection handle; every record it returns is a detached copy.
type IssueRepository struct {
	collection *mongo.Collection
}

func NewIssueRepository(db *mongo.Database) *IssueRepository {
	return &IssueRepository{collection: db.Collection("issues")}
}

// Create inserts a new issue with the documented defaults applied and returns
// the store-assigned identifier as hex.
func (r *IssueRepository) Create(ctx context.Context, input CreateIssueInput) (string, error) {
	issue := newIssue(input, time.Now().UTC())

	result, err := r.collection.InsertOne(ctx, issue)
	if err != nil {
		return "", err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// List returns issues sorted by created_at descending, optionally filtered by
// an exact status match.
func (r *IssueRepository) List(ctx context.Context, limit, skip int64, status string) ([]IssueWithPreview, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.findWithPreview(ctx, filter, limit, skip)
}

// GetReposted returns issues flagged as re-submissions, newest first.
func (r *IssueRepository) GetReposted(ctx context.Context, limit, skip int64) ([]IssueWithPreview, error) {
	return r.findWithPreview(ctx, bson.M{"is_reposted": true}, limit, skip)
}

// GetByID returns one issue with its detail presentation fields. Malformed and
// unknown identifiers both come back as (nil, nil); only store faults are
// errors.
func (r *IssueRepository) GetByID(ctx context.Context, id string) (*IssueDetail, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var issue Issue
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &IssueDetail{
		Issue:      issue,
		Posted:     issue.CreatedAt.Format("2006-01-02"),
		HasImage:   len(issue.Images) > 0,
		MainImage:  firstImage(issue.Images),
		Thumbnails: thumbnails(issue.Images),
	}, nil
}

// UpdateStatus sets the status and refreshes updated_at. The boolean reports
// whether a record was actually modified.
func (r *IssueRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	return r.setFields(ctx, id, bson.M{"status": status})
}

// UpdateAchievement records the outcome text and refreshes updated_at. The
// issue is not required to be in Completed status.
func (r *IssueRepository) UpdateAchievement(ctx context.Context, id, achievement string) (bool, error) {
	return r.setFields(ctx, id, bson.M{"achievement": achievement})
}

func (r *IssueRepository) setFields(ctx context.Context, id string, fields bson.M) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed identifiers behave like unknown ones.
		return false, nil
	}

	fields["updated_at"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// Search matches the query as a case-insensitive substring of title,
// description, location or type, newest first, capped at 20. Empty queries are
// rejected at the API boundary before reaching here.
func (r *IssueRepository) Search(ctx context.Context, query string) ([]IssueWithPreview, error) {
	pattern := regexp.QuoteMeta(query)
	fieldMatch := func(field string) bson.M {
		return bson.M{field: bson.M{"$regex": pattern, "$options": "i"}}
	}

	filter := bson.M{"$or": []bson.M{
		fieldMatch("title"),
		fieldMatch("description"),
		fieldMatch("location"),
		fieldMatch("type"),
	}}

	return r.findWithPreview(ctx, filter, searchResultCap, 0)
}

func (r *IssueRepository) findWithPreview(ctx context.Context, filter bson.M, limit, skip int64) ([]IssueWithPreview, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var issues []Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	previews := make([]IssueWithPreview, 0, len(issues))
	for _, issue := range issues {
		previews = append(previews, IssueWithPreview{
			Issue:    issue,
			Time:     relativeAge(issue.CreatedAt, now),
			HasImage: len(issue.Images) > 0,
			Image:    firstImage(issue.Images),
		})
	}
	return previews, nil
}

// relativeAge renders the elapsed time since creation as a coarse human
// string: whole days, then whole hours, then whole minutes (0 allowed). The
// "s" is appended whenever the count is not 1. Timestamps ahead of now (clock
// skew, hand-seeded data) render as "0 minutes ago".
func relativeAge(from, now time.Time) string {
	elapsed := now.Sub(from)
	if elapsed < 0 {
		elapsed = 0
	}

	if days := int(elapsed.Hours()) / 24; days >= 1 {
		return fmt.Sprintf("%d day%s ago", days, pluralSuffix(days))
	}
	if elapsed >= time.Hour {
		hours := int(elapsed.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, pluralSuffix(hours))
	}
	minutes := int(elapsed.Minutes())
	return fmt.Sprintf("%d minute%s ago", minutes, pluralSuffix(minutes))
}

func pluralSuffix(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func firstImage(images []string) *string {
	if len(images) == 0 {
		return nil
	}
	return &images[0]
}

func thumbnails(images []string) []string {
	if len(images) > 3 {
		return images[:3]
	}
	return images
}

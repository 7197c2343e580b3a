// Seeds the issues collection with sample reports for local development and
// demos, then refreshes the dashboard stats snapshot. Records are written
// directly to the collection with randomized timestamps, bypassing the
// repository's creation defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"uplift-be/config"
	"uplift-be/models"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	backfill := flag.Bool("backfill-statuses", false, "also insert records for statuses the base set misses")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	issues := db.Collection("issues")

	docs := sampleIssues()
	if *backfill {
		docs = append(docs, backfillIssues()...)
	}

	inserted := 0
	for _, issue := range docs {
		if _, err := issues.InsertOne(ctx, issue); err != nil {
			log.WithError(err).Errorf("failed to insert %q", issue.Title)
			continue
		}
		log.Infof("created %s issue: %s", issue.Status, issue.Title)
		inserted++
	}
	log.Infof("inserted %d issues", inserted)

	if err := models.NewStatsAggregator(db).Persist(ctx); err != nil {
		log.WithError(err).Warn("failed to refresh dashboard stats")
	}

	// Status census, for a quick sanity check of the seeded data.
	statuses := []string{
		models.StatusSeen, models.StatusVerified, models.StatusOnHold,
		models.StatusInProgress, models.StatusCompleted,
		models.StatusArchived, models.StatusClosed,
	}
	for _, status := range statuses {
		count, err := issues.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			log.WithError(err).Errorf("failed to count %s issues", status)
			continue
		}
		fmt.Printf("%-12s %d\n", status, count)
	}
	total, err := issues.CountDocuments(ctx, bson.M{})
	if err == nil {
		fmt.Printf("%-12s %d\n", "Total", total)
	}
}

// randomCreatedAt spreads seeded records over the last 30 days so the
// relative-age strings exercise all three granularities.
func randomCreatedAt() time.Time {
	return time.Now().UTC().
		AddDate(0, 0, -rand.Intn(31)).
		Add(-time.Duration(rand.Intn(24)) * time.Hour).
		Add(-time.Duration(rand.Intn(60)) * time.Minute)
}

func randomReporterID() string {
	return fmt.Sprintf("user_%d", 1000+rand.Intn(9000))
}

func seedIssue(issue models.Issue) models.Issue {
	createdAt := randomCreatedAt()
	issue.CreatedAt = createdAt
	issue.UpdatedAt = createdAt
	issue.ReporterID = randomReporterID()
	if issue.Coordinates == nil {
		issue.Coordinates = map[string]float64{}
	}
	return issue
}

func sampleIssues() []models.Issue {
	base := []models.Issue{
		{
			Title:        "Broken Street Light on Main Road",
			Description:  "The street light has been flickering for weeks and now completely stopped working. This creates a safety hazard for pedestrians and drivers during night time.",
			Location:     "Main Road, Downtown",
			Type:         "Infrastructure",
			Impact:       "High",
			Severity:     "Moderate",
			Status:       models.StatusSeen,
			ReporterName: "John Smith",
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500",
				"https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7128, "lng": -74.0060},
			MatchingPostsCount: 12,
		},
		{
			Title:        "Pothole on Highway 101",
			Description:  "Large pothole causing damage to vehicles. Multiple cars have reported tire damage. Urgent repair needed.",
			Location:     "Highway 101, Mile Marker 45",
			Type:         "Road Maintenance",
			Impact:       "High",
			Severity:     "Critical",
			Status:       models.StatusVerified,
			ReporterName: "Sarah Johnson",
			Images: []string{
				"https://images.unsplash.com/photo-1621544402532-6b0c2b979947?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7589, "lng": -73.9851},
			MatchingPostsCount: 8,
			IsReposted:         true,
		},
		{
			Title:        "Graffiti on Public Building",
			Description:  "Vandalism on the side of the community center building. The graffiti covers a large area and needs professional cleaning.",
			Location:     "Community Center, 5th Avenue",
			Type:         "Vandalism",
			Impact:       "Medium",
			Severity:     "Minor",
			Status:       models.StatusInProgress,
			ReporterName: "Mike Davis",
			Images: []string{
				"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7505, "lng": -73.9934},
			MatchingPostsCount: 3,
		},
		{
			Title:        "Broken Playground Equipment",
			Description:  "The swing set at Central Park playground has broken chains. Children could get hurt if this isn't fixed soon.",
			Location:     "Central Park Playground",
			Type:         "Public Safety",
			Impact:       "High",
			Severity:     "Moderate",
			Status:       models.StatusCompleted,
			ReporterName: "Lisa Williams",
			Images: []string{
				"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=500",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7829, "lng": -73.9654},
			MatchingPostsCount: 5,
		},
		{
			Title:        "Overflowing Garbage Bin",
			Description:  "The public trash bin near the bus stop has been overflowing for days. It's attracting pests and creating an unsanitary condition.",
			Location:     "Bus Stop, Oak Street",
			Type:         "Sanitation",
			Impact:       "Medium",
			Severity:     "Moderate",
			Status:       models.StatusSeen,
			ReporterName: "David Brown",
			Images: []string{
				"https://images.unsplash.com/photo-1586264976457-4b6b5d6a6b1a?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7614, "lng": -73.9776},
			MatchingPostsCount: 7,
			IsReposted:         true,
		},
		{
			Title:        "Water Leak on Elm Street",
			Description:  "There's a significant water leak from the main pipe causing flooding on the sidewalk. Water is being wasted and creating slippery conditions.",
			Location:     "Elm Street, Block 200",
			Type:         "Utilities",
			Impact:       "High",
			Severity:     "Critical",
			Status:       models.StatusOnHold,
			ReporterName: "Emily Chen",
			Images: []string{
				"https://images.unsplash.com/photo-1581092580497-e0d23cbdf1dc?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7282, "lng": -74.0044},
			MatchingPostsCount: 15,
		},
		{
			Title:        "Missing Stop Sign",
			Description:  "The stop sign at the intersection of Pine and Cedar was knocked down during the storm last week. This intersection is very dangerous without proper signage.",
			Location:     "Pine St & Cedar Ave Intersection",
			Type:         "Traffic Safety",
			Impact:       "Critical",
			Severity:     "Critical",
			Status:       models.StatusVerified,
			ReporterName: "Robert Wilson",
			Images: []string{
				"https://images.unsplash.com/photo-1579952363873-27d3bfad9c0d?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7425, "lng": -73.9928},
			MatchingPostsCount: 22,
			IsReposted:         true,
		},
		{
			Title:        "Faulty Traffic Light",
			Description:  "The traffic light at the main intersection is stuck on red in all directions. This is causing major traffic congestion during rush hours.",
			Location:     "Main St & Broadway Intersection",
			Type:         "Traffic Infrastructure",
			Impact:       "Critical",
			Severity:     "Critical",
			Status:       models.StatusCompleted,
			ReporterName: "Jennifer Martinez",
			Images: []string{
				"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=500",
			},
			Coordinates:        map[string]float64{"lat": 40.7580, "lng": -73.9855},
			MatchingPostsCount: 18,
			IsReposted:         true,
		},
	}

	for i := range base {
		base[i] = seedIssue(base[i])
	}
	return base
}

// backfillIssues covers the statuses the base sample set leaves empty, so
// every dashboard bucket and the Archived/Closed total behavior can be
// exercised against real data.
func backfillIssues() []models.Issue {
	extra := []models.Issue{
		{
			Title:        "Damaged Road Sign - Fixed and Archived",
			Description:  "Road sign was damaged in storm but has been repaired and archived for reference.",
			Location:     "Oak Street & 2nd Avenue",
			Type:         "Traffic Infrastructure",
			Impact:       "Medium",
			Severity:     "Minor",
			Status:       models.StatusArchived,
			ReporterName: "Mike Wilson",
			Images: []string{
				"https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=500",
			},
			Achievement: "Sign replaced and intersection re-inspected.",
		},
		{
			Title:        "Playground Safety Issue - Case Closed",
			Description:  "Safety hazard at playground has been permanently addressed and case is now closed.",
			Location:     "Central Park Playground",
			Type:         "Public Safety",
			Impact:       "Medium",
			Severity:     "Moderate",
			Status:       models.StatusClosed,
			ReporterName: "Lisa Chen",
			Images: []string{
				"https://images.unsplash.com/photo-1577976041001-4d3b60c6d42a?w=500",
			},
			Achievement: "Equipment repaired and certified safe.",
		},
		{
			Title:        "Parking Meter Malfunction - On Hold",
			Description:  "Multiple parking meters not accepting payment. Waiting for parts delivery to complete repairs.",
			Location:     "Downtown Shopping District",
			Type:         "Parking Infrastructure",
			Impact:       "Medium",
			Severity:     "Moderate",
			Status:       models.StatusOnHold,
			ReporterName: "Maria Garcia",
			Images: []string{
				"https://images.unsplash.com/photo-1575403071077-43f50b16b313?w=500",
			},
		},
		{
			Title:        "Bus Stop Damage - Recently Completed",
			Description:  "Bus stop shelter repair has been completed successfully and inspected.",
			Location:     "Metro Line 5, Stop 42",
			Type:         "Public Transportation",
			Impact:       "Medium",
			Severity:     "Moderate",
			Status:       models.StatusCompleted,
			ReporterName: "Sophie Anderson",
			Images: []string{
				"https://images.unsplash.com/photo-1570125909517-53cb21c89ff2?w=500",
			},
			Achievement: "Shelter rebuilt with reinforced panels.",
		},
	}

	for i := range extra {
		extra[i] = seedIssue(extra[i])
	}
	return extra
}

package main

import (
	"context"
	"net/http"
	"time"

	"uplift-be/config"
	"uplift-be/controllers"
	"uplift-be/middlewares"
	"uplift-be/models"
	"uplift-be/routes"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, write endpoints will reject every token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			log.WithError(err).Warn("failed to disconnect from MongoDB")
		}
	}()
	log.Info("connected to MongoDB")

	db := client.Database(cfg.MongoDatabase)
	issueRepo := models.NewIssueRepository(db)
	statsAggregator := models.NewStatsAggregator(db)

	var limiter gin.HandlerFunc
	if cfg.RedisAddr != "" {
		redisClient, err := config.NewRedisClient(ctx, cfg)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}
		defer redisClient.Close()
		limiter = middlewares.ReportRateLimiter(redisClient, cfg.DailyReportLimit)
		log.Info("connected to Redis")
	} else {
		log.Info("no redis address configured, report rate limiting disabled")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	routes.AuthRoutes(r, controllers.NewAuthController(db, cfg.JWTSecret), auth)
	routes.IssueRoutes(r, controllers.NewIssueController(issueRepo, statsAggregator), auth, limiter)
	routes.StatsRoutes(r, controllers.NewStatsController(statsAggregator))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

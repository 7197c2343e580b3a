package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds process configuration, read once at startup.
type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	CORSOrigins []string

	// DailyReportLimit caps issue creation per reporter per day. Only
	// enforced when a redis address is configured.
	DailyReportLimit int64
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGODB_DATABASE", "uplift"),
		RedisAddr:        getEnv("REDIS_ADDRESS", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CORSOrigins:      strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		DailyReportLimit: getEnvInt64("DAILY_REPORT_LIMIT", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

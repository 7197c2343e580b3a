package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const reportLimitKeyPrefix = "report-limit"

// ReportRateLimiter caps issue creation per authenticated reporter at limit
// submissions per rolling day, tracked as a redis counter with a 24h TTL.
// Runs after AuthMiddleware.
func ReportRateLimiter(client *redis.Client, limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			abortUnauthorized(c, "User not authenticated")
			return
		}

		ctx := c.Request.Context()
		userKey := reportLimitKeyPrefix + ":" + userID

		count, err := client.Incr(ctx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error tracking report count"})
			c.Abort()
			return
		}

		// First submission of the window starts the clock.
		if count == 1 {
			if err := client.Expire(ctx, userKey, 24*time.Hour).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error tracking report count"})
				c.Abort()
				return
			}
		}

		if count > limit {
			retryAfter, _ := client.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Daily report limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

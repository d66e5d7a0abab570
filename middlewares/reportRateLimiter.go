package middlewares

import (
	"net/http"
	"time"

	"ecowaste-be/config"

	"github.com/gin-gonic/gin"
)

// ReportRateLimiter caps waste report submissions per user per day using a
// Redis counter with a 24h TTL.
func ReportRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		ctx := config.Ctx
		userKey := "report_limit:" + userID

		count, err := config.RedisClient.Incr(ctx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, userKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

package middlewares

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecowaste-be/config"
)

const idempotencyTTL = 24 * time.Hour

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated X-Request-Id, so
// retrying a timed-out write cannot duplicate its effect. The header is
// optional; callers that skip it get no replay protection.
func Idempotency() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			c.Next()
			return
		}
		if _, err := uuid.Parse(reqID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Request-Id must be a UUID"})
			c.Abort()
			return
		}

		userIDVal, _ := c.Get("user_id")
		userID, _ := userIDVal.(string)
		key := "idem:" + userID + ":" + reqID

		ctx := config.Ctx
		if cached, err := config.RedisClient.Get(ctx, key).Result(); err == nil {
			status, body := splitCached(cached)
			c.Data(status, "application/json", []byte(body))
			c.Abort()
			return
		}

		writer := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			cached := fmt.Sprintf("%d\n%s", status, writer.buf.String())
			_ = config.RedisClient.Set(ctx, key, cached, idempotencyTTL).Err()
		}
	}
}

func splitCached(cached string) (int, string) {
	parts := strings.SplitN(cached, "\n", 2)
	if len(parts) != 2 {
		return http.StatusOK, cached
	}
	status, err := strconv.Atoi(parts[0])
	if err != nil {
		return http.StatusOK, parts[1]
	}
	return status, parts[1]
}

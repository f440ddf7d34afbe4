package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itwhiprentals/fleet-timeline/common/id"
	"github.com/itwhiprentals/fleet-timeline/common/logger"
)

// RequestID assigns each request a snowflake id, attaches it to the log
// context, and echoes it in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.New()
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", strconv.FormatInt(requestID, 10))
		c.Next()
	}
}

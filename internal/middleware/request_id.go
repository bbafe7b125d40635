package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskmaster-ai/pkg/log"
)

// RequestID reuses the incoming X-Request-ID or generates one, echoes it back,
// and makes it available to the logger through the request context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

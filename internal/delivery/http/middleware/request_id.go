package middleware

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses a caller supplied X-Request-ID or generates one, and makes it
// visible to handlers, logs and error bodies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Header(RequestIDHeader, id)

		ctx := context.WithValue(c.Request.Context(), domain.KeyRequestID, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(ctx, id))

		c.Next()
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/dashboard-config-api/internal/utils"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id (reusing a valid incoming X-Request-ID),
// echoes it back and logs one line per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(string(utils.RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if subject := c.GetString(string(utils.SubjectKey)); subject != "" {
			fields = append(fields, zap.String("subject", subject))
		}

		if c.Writer.Status() >= 500 {
			log.Warn("Request failed", fields...)
			return
		}
		log.Info("Request handled", fields...)
	}
}

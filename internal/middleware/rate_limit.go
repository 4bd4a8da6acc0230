package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/utils"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

const rateLimitWindow = time.Minute

// RateLimitMiddleware keeps fixed one-minute windows in Redis. A nil client
// disables limiting, and Redis errors let the request through.
type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// SubjectRateLimit limits per authenticated subject, or per client IP when the
// request carries no subject.
func (m *RateLimitMiddleware) SubjectRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(string(utils.SubjectKey))
		if subject == "" {
			subject = "ip:" + c.ClientIP()
		}
		m.limit(c, fmt.Sprintf("rate_limit:subject:%s", subject), m.subjectLimit(), "Rate limit exceeded")
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.limit(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int, message string) {
	if m.redis == nil || limit <= 0 {
		c.Next()
		return
	}

	current, err := m.increment(c.Request.Context(), key)
	if err != nil {
		m.logger.Error("Redis error in rate limiting", err, zap.String("key", key))
		c.Next()
		return
	}

	reset := time.Now().Add(rateLimitWindow).Unix()
	remaining := limit - int(current)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	if int(current) > limit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
			"reset": reset,
		})
		return
	}

	c.Next()
}

// increment bumps the window counter and starts the window on the first hit.
func (m *RateLimitMiddleware) increment(ctx context.Context, key string) (int64, error) {
	pipe := m.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	return incr.Val(), nil
}

func (m *RateLimitMiddleware) subjectLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000 // Default: 1000 requests per minute
}

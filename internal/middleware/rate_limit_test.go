package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

func newLimitedRouter(m *RateLimitMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", m.GlobalRateLimit(1), m.SubjectRateLimit(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRateLimit_NilClientPassesThrough(t *testing.T) {
	// Arrange
	m := NewRateLimitMiddleware(nil, &config.Config{DefaultRateLimit: 1}, logger.NewNop())
	router := newLimitedRouter(m)

	// Act & Assert
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimit_FailsOpenWhenRedisIsDown(t *testing.T) {
	// Arrange
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	m := NewRateLimitMiddleware(client, &config.Config{DefaultRateLimit: 1}, logger.NewNop())

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	newLimitedRouter(m).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubjectLimit_DefaultsWhenUnset(t *testing.T) {
	m := NewRateLimitMiddleware(nil, &config.Config{}, logger.NewNop())

	assert.Equal(t, 1000, m.subjectLimit())
}

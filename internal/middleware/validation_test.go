package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/dashboard-config-api/pkg/logger"
)

func newValidatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewValidationMiddleware(logger.NewNop())
	router := gin.New()
	router.Use(m.BlockSuspiciousPatterns(), m.SanitizeInput(), m.ValidateRequestSize(64), m.ValidateContentType("application/json"))
	router.Any("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("q"))
	})
	return router
}

func TestValidation_ContentType(t *testing.T) {
	router := newValidatedRouter()

	cases := []struct {
		name        string
		method      string
		body        string
		contentType string
		status      int
	}{
		{"json body", http.MethodPost, `{"a":1}`, "application/json; charset=utf-8", http.StatusOK},
		{"missing type", http.MethodPost, `{"a":1}`, "", http.StatusBadRequest},
		{"form body", http.MethodPatch, `a=1`, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"get ignores type", http.MethodGet, "", "text/plain", http.StatusOK},
		{"empty delete", http.MethodDelete, "", "", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, "/echo", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestValidation_RequestTooLarge(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/echo", bytes.NewReader(bytes.Repeat([]byte("a"), 128)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	newValidatedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestValidation_BlocksSuspiciousQuery(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/echo?q=1%20UNION%20SELECT%20password", nil)
	w := httptest.NewRecorder()

	newValidatedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidation_SanitizesControlCharacters(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/echo?q=da%00sh%07board", nil)
	w := httptest.NewRecorder()

	newValidatedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger.NewNop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	incoming := uuid.NewString()

	reused := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	router.ServeHTTP(reused, req)

	generated := httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	router.ServeHTTP(generated, req)

	assert.Equal(t, incoming, reused.Header().Get(RequestIDHeader))
	_, err := uuid.Parse(generated.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", generated.Header().Get(RequestIDHeader))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name           string
		timeout        time.Duration
		handler        gin.HandlerFunc
		expectedStatus int
	}{
		{
			name:    "fast handler",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "handler that waits on the context past the deadline",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			expectedStatus: http.StatusGatewayTimeout,
		},
		{
			name:    "handler that responds after the deadline keeps its response",
			timeout: 10 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
				c.String(http.StatusServiceUnavailable, "late")
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:    "zero timeout disables the deadline",
			timeout: 0,
			handler: func(c *gin.Context) {
				_, hasDeadline := c.Request.Context().Deadline()
				assert.False(t, hasDeadline)
				c.Status(http.StatusOK)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

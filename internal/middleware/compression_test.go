package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	router := gin.New()
	router.Use(Compression("/api/potholes/export"))
	body := strings.Repeat("pothole ", 200)
	router.GET("/api/potholes", func(c *gin.Context) { c.String(http.StatusOK, body) })
	router.GET("/api/potholes/export", func(c *gin.Context) { c.String(http.StatusOK, body) })

	tests := []struct {
		path             string
		expectedEncoding string
	}{
		{"/api/potholes", "gzip"},
		{"/api/potholes/export", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedEncoding, w.Header().Get("Content-Encoding"))
		})
	}
}

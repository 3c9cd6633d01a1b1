package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/jobs/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{name: "labels matched routes by template", path: "/api/jobs/abc", label: "/api/jobs/:id", expectedStatus: http.StatusOK},
		{name: "collapses unmatched paths", path: "/nope/123", label: "unmatched", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordPotholeSheet(t *testing.T) {
	before := testutil.ToFloat64(MaterialKilogramsTotal)

	RecordPotholeSheet("create", "success", 100)
	RecordPotholeSheet("create", "error", 50)

	assert.Equal(t, before+100, testutil.ToFloat64(MaterialKilogramsTotal))
	assert.GreaterOrEqual(t, testutil.ToFloat64(PotholeSheetsTotal.WithLabelValues("create", "error")), 1.0)
}

func TestRecordFilterRejection(t *testing.T) {
	before := testutil.ToFloat64(FilterRejectionsTotal.WithLabelValues("jobs", "isComplete"))
	RecordFilterRejection("jobs", "isComplete")
	assert.Equal(t, before+1, testutil.ToFloat64(FilterRejectionsTotal.WithLabelValues("jobs", "isComplete")))
}

func TestRecordJobTypeCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(JobTypeCacheOperationsTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(JobTypeCacheOperationsTotal.WithLabelValues("miss"))

	RecordJobTypeCacheLookup(true)
	RecordJobTypeCacheLookup(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(JobTypeCacheOperationsTotal.WithLabelValues("hit")))
	assert.Equal(t, misses+1, testutil.ToFloat64(JobTypeCacheOperationsTotal.WithLabelValues("miss")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-jobs", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-jobs")))
}

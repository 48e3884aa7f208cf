package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/quotebook/internal/entities"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "ok"},
		{"validation", entities.NewValidationError("text", "blank"), "validation"},
		{"not found", entities.NewNotFoundError("quote", 1), "not_found"},
		{"storage", entities.NewStorageError("list", errors.New("boom")), "storage"},
		{"other", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Result(tt.err))
		})
	}
}

func TestObserveStoreOp(t *testing.T) {
	before := testutil.ToFloat64(storeOperations.WithLabelValues("test_op", "not_found"))

	ObserveStoreOp("test_op", time.Now(), entities.NewNotFoundError("quote", 7))

	after := testutil.ToFloat64(storeOperations.WithLabelValues("test_op", "not_found"))
	assert.Equal(t, before+1, after)
}

func TestObserveExport(t *testing.T) {
	before := testutil.ToFloat64(exportRuns.WithLabelValues("test", "ok"))
	ObserveExport("test", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(exportRuns.WithLabelValues("test", "ok")))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/api/quotes/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/quotes/12", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(httpDuration, "quotebook_http_response_duration_seconds"))
}

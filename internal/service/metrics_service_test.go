package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scrape(t *testing.T, svc *MetricsService) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	svc.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestObserveHTTPRequestExported(t *testing.T) {
	svc := NewMetricsService()
	svc.ObserveHTTPRequest(http.MethodGet, "/classes", http.StatusOK, 25*time.Millisecond)

	body := scrape(t, svc)
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")
}

func TestObserveDBQueryExported(t *testing.T) {
	svc := NewMetricsService()
	svc.ObserveDBQuery("class_list", 3*time.Millisecond)

	body := scrape(t, svc)
	assert.Contains(t, body, "db_query_duration_seconds")
	assert.Contains(t, body, `query="class_list"`)
}

func TestObserveDBQueryNilReceiver(t *testing.T) {
	var svc *MetricsService
	assert.NotPanics(t, func() {
		svc.ObserveDBQuery("class_list", time.Millisecond)
	})
}

func TestClassListingsObserveQueryDuration(t *testing.T) {
	metrics := NewMetricsService()
	repo := newMockClassRepo()
	repo.approved = approvedClasses(3)
	svc := NewClassService(repo, validator.New(), zap.NewNop(), metrics, 6)

	_, err := svc.ListPopular(context.Background())
	require.NoError(t, err)
	_, err = svc.ListApproved(context.Background())
	require.NoError(t, err)

	body := scrape(t, metrics)
	assert.Contains(t, body, `query="class_list_popular"`)
	assert.Contains(t, body, `query="class_list_approved"`)
}

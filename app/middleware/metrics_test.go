package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	metrics := NewMetrics()

	router := mux.NewRouter()
	router.Use(metrics.Middleware)
	router.HandleFunc("/api/gallery/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods("POST")

	for _, path := range []string{"/api/gallery/1/like", "/api/gallery/2/like"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", path, nil))
	}

	expected := `
# HELP http_requests_total Tracks the number of HTTP requests.
# TYPE http_requests_total counter
http_requests_total{method="POST",route="/api/gallery/{id}/like",status="404"} 2
`
	require.NoError(t, testutil.CollectAndCompare(metrics.requestsTotal, strings.NewReader(expected)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.requestDuration))

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/hrp/pkg/metrics"
)

func TestPrometheusController_CustomGatherer(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "hrp_test_lookups_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Add(3)

	c := metrics.NewPrometheusController("/metrics", metrics.WithGatherer(reg))
	assert.Equal(t, "/metrics", c.Key())
	r := mux.NewRouter()
	c.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "hrp_test_lookups_total 3")
	assert.NotContains(t, string(body), "go_goroutines")
}

func TestPrometheusController_DefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, metrics.DefaultPath, metrics.NewPrometheusController("").Key())
}

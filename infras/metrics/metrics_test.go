package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinedesk/infras/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRefresh(t *testing.T) {
	before := testutil.ToFloat64(metrics.StoreRefreshTotal.WithLabelValues("bookings", "failure"))

	metrics.ObserveRefresh("bookings", errors.New("down"), 10*time.Millisecond)

	after := testutil.ToFloat64(metrics.StoreRefreshTotal.WithLabelValues("bookings", "failure"))
	assert.InDelta(t, before+1, after, 0.0001)
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(metrics.Middleware)
	router.Get("/v1/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/bookings/{id}", "204"))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/bookings/{id}", "204"))
	assert.InDelta(t, before+1, after, 0.0001)
}

func TestHandlerExposesMetrics(t *testing.T) {
	metrics.ObserveMutation("orders", "create", nil)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "dinedesk_store_mutation_total"))
}

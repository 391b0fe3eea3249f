package metrics

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinedesk_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dinedesk_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StoreRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinedesk_store_refresh_total",
			Help: "Collection refreshes against the restaurant backend.",
		},
		[]string{"store", "result"},
	)

	StoreRefreshDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dinedesk_store_refresh_duration_seconds",
			Help:    "Latency of collection refreshes.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"store"},
	)

	StoreMutationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinedesk_store_mutation_total",
			Help: "Create, update and remove calls by outcome.",
		},
		[]string{"store", "action", "result"},
	)

	ActivePollers = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dinedesk_active_pollers",
			Help: "Pollers currently running.",
		},
		[]string{"store"},
	)

	ActiveWorkspaces = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dinedesk_active_workspaces",
			Help: "Signed-in sessions holding dashboard state in this replica.",
		},
	)

	ChangeEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinedesk_change_events_total",
			Help: "Change events received from the feed by resource.",
		},
		[]string{"resource"},
	)

	LiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dinedesk_live_connections",
			Help: "Open live websocket connections.",
		},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinedesk_upstream_requests_total",
			Help: "Requests sent to the restaurant backend.",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		StoreRefreshTotal,
		StoreRefreshDuration,
		StoreMutationTotal,
		ActivePollers,
		ActiveWorkspaces,
		ChangeEventsTotal,
		LiveConnections,
		UpstreamRequestsTotal,
	)
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}

	return resultSuccess
}

func ObserveRefresh(store string, err error, elapsed time.Duration) {
	StoreRefreshTotal.WithLabelValues(store, result(err)).Inc()
	StoreRefreshDuration.WithLabelValues(store).Observe(elapsed.Seconds())
}

func ObserveMutation(store, action string, err error) {
	StoreMutationTotal.WithLabelValues(store, action, result(err)).Inc()
}

func ObserveUpstream(method string, status int) {
	UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency. The chi route pattern is used as the
// label so ids in the path do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack is needed by the live websocket upgrade.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}

	r.statusCode = http.StatusSwitchingProtocols

	return hijacker.Hijack()
}

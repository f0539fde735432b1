package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "insights", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insights", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	QueryRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "insights", Name: "query_runs_total", Help: "Report query executions (cache misses)."},
		[]string{"query"},
	)
	QueryLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insights", Name: "query_duration_seconds",
			Help:    "Report query duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "insights", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	RecordsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "insights", Name: "records_loaded_total", Help: "Booking records accepted per source."},
		[]string{"source"},
	)
	RecordsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "insights", Name: "records_dropped_total", Help: "Rows rejected during load."},
		[]string{"source", "reason"}, // reason: malformed|incomplete|duplicate
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, QueryRuns, QueryLatency, CacheEvents, RecordsLoaded, RecordsDropped)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveQuery(query string, dur time.Duration) {
	QueryRuns.WithLabelValues(query).Inc()
	QueryLatency.WithLabelValues(query).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveLoad(source string, accepted int) {
	RecordsLoaded.WithLabelValues(source).Add(float64(accepted))
}

func ObserveDrop(source, reason string) {
	RecordsDropped.WithLabelValues(source, reason).Inc()
}

// Package metrics defines the Prometheus instrumentation for dtqueue and
// the hooks that feed it from the queue engine and the storage layer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	opTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dtqueue_ops_total",
			Help: "Queue operations by outcome.",
		},
		[]string{"op", "outcome"},
	)
	opDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dtqueue_op_duration_seconds",
			Help:    "Latency of queue operations.",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"op"},
	)

	storageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dtqueue_storage_op_duration_seconds",
			Help:    "Latency of storage reads, writes, and batch commits.",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"op"},
	)
	storageBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dtqueue_storage_bytes_total",
			Help: "Bytes moved through storage reads, writes, and batch commits.",
		},
		[]string{"op"},
	)
	storageBatchOps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dtqueue_storage_batch_ops_total",
			Help: "Operations applied through committed batches.",
		},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dtqueue_http_inflight_requests",
			Help: "Requests currently being served.",
		},
	)
	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dtqueue_http_request_duration_seconds",
			Help:    "A histogram of request latencies.",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method"},
	)
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dtqueue_http_requests_total",
			Help: "Processed requests by status code.",
		},
		[]string{"code", "method"},
	)
)

// EngineHook feeds engine operation observations into Prometheus. It
// satisfies the queue package's MetricsHook.
type EngineHook struct{}

func (EngineHook) ObserveOp(op, outcome string, elapsed time.Duration) {
	opTotal.WithLabelValues(op, outcome).Inc()
	opDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// StoreHook feeds storage observations into Prometheus. It satisfies the
// pebblestore package's MetricsHook.
type StoreHook struct{}

func (StoreHook) ObserveWrite(elapsed time.Duration, bytes int) {
	storageDuration.WithLabelValues("write").Observe(elapsed.Seconds())
	storageBytes.WithLabelValues("write").Add(float64(bytes))
}

func (StoreHook) ObserveRead(elapsed time.Duration, bytes int) {
	storageDuration.WithLabelValues("read").Observe(elapsed.Seconds())
	storageBytes.WithLabelValues("read").Add(float64(bytes))
}

func (StoreHook) ObserveBatchCommit(elapsed time.Duration, numOps, bytes int) {
	storageDuration.WithLabelValues("commit").Observe(elapsed.Seconds())
	storageBytes.WithLabelValues("commit").Add(float64(bytes))
	storageBatchOps.Add(float64(numOps))
}

// Handler wraps next with in-flight, duration, and status-code
// instrumentation.
func Handler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(httpInFlight,
		promhttp.InstrumentHandlerDuration(httpDuration,
			promhttp.InstrumentHandlerCounter(httpRequests, next)))
}

// Endpoint returns the handler serving the Prometheus exposition format.
func Endpoint() http.Handler {
	return promhttp.Handler()
}

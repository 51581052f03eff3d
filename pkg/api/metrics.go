package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/disgo/pkg/pdu"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API. It also implements
// pdu.Observer so decode traffic is counted per PDU type.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Dispatcher metrics
	pdusDecodedTotal    *prometheus.CounterVec
	pduBytesTotal       prometheus.Counter
	pdusSkippedTotal    *prometheus.CounterVec
	decodeFailuresTotal *prometheus.CounterVec

	// Archive metrics
	archiveOperationsTotal   *prometheus.CounterVec
	archiveOperationDuration *prometheus.HistogramVec
	archiveRecords           *prometheus.GaugeVec

	healthChecksTotal *prometheus.CounterVec
}

var _ pdu.Observer = (*Metrics)(nil)

// NewMetrics creates all metrics on a private registry, so several servers
// can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disgo_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "disgo_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "disgo_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		pdusDecodedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disgo_pdus_decoded_total",
				Help: "Total number of PDUs decoded",
			},
			[]string{"type"},
		),

		pduBytesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "disgo_pdu_bytes_total",
				Help: "Total bytes of successfully decoded PDUs",
			},
		),

		pdusSkippedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disgo_pdus_skipped_total",
				Help: "Total number of records of unregistered PDU types",
			},
			[]string{"version", "type"},
		),

		decodeFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disgo_decode_failures_total",
				Help: "Total number of records that failed to decode",
			},
			[]string{"type"},
		),

		archiveOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disgo_archive_operations_total",
				Help: "Total number of archive operations",
			},
			[]string{"operation", "status"},
		),

		archiveOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "disgo_archive_operation_duration_seconds",
				Help:    "Archive operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		archiveRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "disgo_archive_records",
				Help: "Number of archived PDUs by type",
			},
			[]string{"type"},
		),

		healthChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disgo_health_checks_total",
				Help: "Total number of health checks",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the metrics registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and embedding.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Decoded implements pdu.Observer.
func (m *Metrics) Decoded(p pdu.PDU, size int) {
	m.pdusDecodedTotal.WithLabelValues(p.Type().String()).Inc()
	m.pduBytesTotal.Add(float64(size))
}

// Skipped implements pdu.Observer.
func (m *Metrics) Skipped(version pdu.ProtocolVersion, t pdu.Type, _ int) {
	m.pdusSkippedTotal.WithLabelValues(strconv.Itoa(int(version)), t.String()).Inc()
}

// Failed implements pdu.Observer.
func (m *Metrics) Failed(err *pdu.DecodeError) {
	m.decodeFailuresTotal.WithLabelValues(err.Type.String()).Inc()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordArchiveOperation records an archive operation
func (m *Metrics) RecordArchiveOperation(operation string, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.archiveOperationsTotal.WithLabelValues(operation, status).Inc()
	m.archiveOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateArchiveCounts sets the per-type record gauge.
func (m *Metrics) UpdateArchiveCounts(counts map[pdu.Type]int) {
	m.archiveRecords.Reset()
	for t, n := range counts {
		m.archiveRecords.WithLabelValues(t.String()).Set(float64(n))
	}
}

// RecordHealthCheck records a health check
func (m *Metrics) RecordHealthCheck(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.healthChecksTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

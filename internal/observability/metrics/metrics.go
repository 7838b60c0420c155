package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics carries the service's Prometheus registry: HTTP request metrics
// plus counters for the audit lifecycle and file processing. A nil *Metrics
// is valid and records nothing, so components can take it optionally.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	auditsStarted   prometheus.Counter
	auditsCompleted prometheus.Counter
	auditsCancelled prometheus.Counter
	filesProcessed  prometheus.Counter
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "biasaudit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "biasaudit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "biasaudit",
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	auditsStarted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biasaudit",
		Subsystem: "audit",
		Name:      "tracking_started_total",
		Help:      "Total audits handed to the lifecycle tracker.",
	})
	auditsCompleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biasaudit",
		Subsystem: "audit",
		Name:      "completed_total",
		Help:      "Total audits that reached completion.",
	})
	auditsCancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biasaudit",
		Subsystem: "audit",
		Name:      "tracking_cancelled_total",
		Help:      "Total audit tracking sequences cancelled before completion.",
	})
	filesProcessed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "biasaudit",
		Subsystem: "files",
		Name:      "processed_total",
		Help:      "Total uploaded files marked processed.",
	})

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		auditsStarted,
		auditsCompleted,
		auditsCancelled,
		filesProcessed,
	)

	return &Metrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		auditsStarted:   auditsStarted,
		auditsCompleted: auditsCompleted,
		auditsCancelled: auditsCancelled,
		filesProcessed:  filesProcessed,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count, duration and in-flight gauge. The route
// template (c.FullPath) is used as the path label so ids do not explode
// cardinality.
func (m *Metrics) Middleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestTotal.WithLabelValues(
			service,
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(service, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) AuditStarted() {
	if m != nil {
		m.auditsStarted.Inc()
	}
}

func (m *Metrics) AuditCompleted() {
	if m != nil {
		m.auditsCompleted.Inc()
	}
}

func (m *Metrics) AuditCancelled() {
	if m != nil {
		m.auditsCancelled.Inc()
	}
}

func (m *Metrics) FileProcessed() {
	if m != nil {
		m.filesProcessed.Inc()
	}
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	uploadsTotal   *prometheus.CounterVec
	uploadDuration *prometheus.HistogramVec
	chatsTotal     *prometheus.CounterVec
	activeSessions prometheus.Gauge
	queueDepth     prometheus.Gauge
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": service}

	uploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "resume_analyzer",
			Subsystem:   "upload",
			Name:        "total",
			Help:        "Resume uploads by contract and outcome.",
			ConstLabels: labels,
		},
		[]string{"contract", "outcome"},
	)
	uploadDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "resume_analyzer",
			Subsystem:   "upload",
			Name:        "duration_seconds",
			Help:        "Time spent waiting on the analysis service.",
			Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
			ConstLabels: labels,
		},
		[]string{"contract", "outcome"},
	)
	chatsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "resume_analyzer",
			Subsystem:   "chat",
			Name:        "messages_total",
			Help:        "Chat messages sent by outcome.",
			ConstLabels: labels,
		},
		[]string{"outcome"},
	)
	activeSessions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "resume_analyzer",
			Subsystem:   "session",
			Name:        "active",
			Help:        "Sessions currently held in memory.",
			ConstLabels: labels,
		},
	)
	queueDepth := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "resume_analyzer",
			Subsystem:   "worker",
			Name:        "queue_depth",
			Help:        "Uploads waiting for a worker.",
			ConstLabels: labels,
		},
	)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		uploadsTotal,
		uploadDuration,
		chatsTotal,
		activeSessions,
		queueDepth,
	)

	return &Metrics{
		registry:       registry,
		uploadsTotal:   uploadsTotal,
		uploadDuration: uploadDuration,
		chatsTotal:     chatsTotal,
		activeSessions: activeSessions,
		queueDepth:     queueDepth,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveUpload(contract, outcome string, elapsed time.Duration) {
	m.uploadsTotal.WithLabelValues(contract, outcome).Inc()
	if elapsed > 0 {
		m.uploadDuration.WithLabelValues(contract, outcome).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) ObserveChat(outcome string) {
	m.chatsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

func (m *Metrics) SetQueueDepth(n int) {
	m.queueDepth.Set(float64(n))
}

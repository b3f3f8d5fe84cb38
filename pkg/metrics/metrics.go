// Package metrics exposes the assistant's Prometheus counters on a private
// registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leafscan"

type Metrics struct {
	registry *prometheus.Registry

	ChatReplies     *prometheus.CounterVec
	FallbackTopics  *prometheus.CounterVec
	DelegateErrors  *prometheus.CounterVec
	DelegateLatency *prometheus.HistogramVec
	RateLimited     prometheus.Counter
	KnowledgeSize   prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ChatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Chat replies by the source that produced them",
		}, []string{"source"}),
		FallbackTopics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "fallback_topics_total",
			Help:      "Fallback replies by detected topic",
		}, []string{"topic"}),
		DelegateErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "errors_total",
			Help:      "Failed LLM delegate calls",
		}, []string{"provider"}),
		DelegateLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "LLM delegate call duration",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "rate_limited_total",
			Help:      "Messages answered offline because the user hit the LLM rate limit",
		}),
		KnowledgeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "knowledge",
			Name:      "entries",
			Help:      "Entries in the active knowledge base",
		}),
	}

	reg.MustRegister(
		m.ChatReplies,
		m.FallbackTopics,
		m.DelegateErrors,
		m.DelegateLatency,
		m.RateLimited,
		m.KnowledgeSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveReply records one chat reply. topic is empty unless the fallback
// answered.
func (m *Metrics) ObserveReply(source, topic string) {
	m.ChatReplies.WithLabelValues(source).Inc()
	if topic != "" {
		m.FallbackTopics.WithLabelValues(topic).Inc()
	}
}

// ObserveDelegate records one LLM call.
func (m *Metrics) ObserveDelegate(provider string, took time.Duration, err error) {
	m.DelegateLatency.WithLabelValues(provider).Observe(took.Seconds())
	if err != nil {
		m.DelegateErrors.WithLabelValues(provider).Inc()
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

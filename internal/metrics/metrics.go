// Package metrics holds Prometheus instruments that are used across xmf.
// All collectors are registered with the global registry, so a host that
// exposes the default gatherer picks them up without extra wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xmf_render_total",
			Help: "Templates rendered, by effective render mode.",
		}, []string{"mode"})

	RenderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xmf_render_errors_total",
			Help: "Render failures, by kind (missing_template, unreadable_template, no_engine, template).",
		}, []string{"kind"})

	RenderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "xmf_render_duration_seconds",
			Help:    "Time spent evaluating one template.",
			Buckets: prometheus.DefBuckets,
		})

	TemplateCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "xmf_template_cache_hits_total",
			Help: "Parsed templates served from the cache.",
		})

	TemplateCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "xmf_template_cache_misses_total",
			Help: "Parsed templates built from disk.",
		})
)

func init() {
	prometheus.MustRegister(
		RenderTotal,
		RenderErrorsTotal,
		RenderDuration,
		TemplateCacheHits,
		TemplateCacheMisses,
	)
}

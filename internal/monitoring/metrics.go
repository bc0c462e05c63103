package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors for the menu service
type Metrics struct {
	registry *prometheus.Registry

	filterRequests      *prometheus.CounterVec
	filterResultSize    prometheus.Histogram
	resolveRequests     prometheus.Counter
	ingredientFallbacks prometheus.Counter
}

// NewMetrics creates the collectors on their own registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		filterRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partymenu_filter_requests_total",
				Help: "Dish filter requests by source",
			},
			[]string{"source"},
		),
		filterResultSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "partymenu_filter_result_size",
				Help:    "Number of dishes returned by a filter request",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),
		resolveRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "partymenu_resolve_requests_total",
				Help: "Ingredient resolution requests",
			},
		),
		ingredientFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "partymenu_ingredient_fallbacks_total",
				Help: "Ingredient names missing from the catalog",
			},
		),
	}

	registry.MustRegister(m.filterRequests, m.filterResultSize, m.resolveRequests, m.ingredientFallbacks)
	return m
}

// ObserveFilter records one filter request
func (m *Metrics) ObserveFilter(source string, resultSize int) {
	m.filterRequests.WithLabelValues(source).Inc()
	m.filterResultSize.Observe(float64(resultSize))
}

// ObserveResolve records one resolution and how many names fell back
func (m *Metrics) ObserveResolve(fallbacks int) {
	m.resolveRequests.Inc()
	m.ingredientFallbacks.Add(float64(fallbacks))
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package prometheus implements scrape metrics collection.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jwielgosz/schemify"
)

// Ensure Metrics implements schemify.Metrics at compile time.
var _ schemify.Metrics = (*Metrics)(nil)

// Metrics records scrape counts and durations.
type Metrics struct {
	scrapes  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		scrapes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schemify_scrapes_total",
			Help: "Number of scrape calls by schema type and outcome.",
		}, []string{"type", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schemify_scrape_duration_seconds",
			Help:    "Scrape call duration by schema type.",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 90},
		}, []string{"type"}),
	}
	reg.MustRegister(m.scrapes, m.duration)
	return m
}

// ObserveScrape records one finished scrape call.
func (m *Metrics) ObserveScrape(typ schemify.SchemaType, outcome string, seconds float64) {
	m.scrapes.WithLabelValues(string(typ), outcome).Inc()
	m.duration.WithLabelValues(string(typ)).Observe(seconds)
}

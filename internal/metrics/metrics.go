// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "incident_events_loaded",
		Help: "Number of canonical events currently held in memory.",
	})

	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_http_requests_total",
		Help: "HTTP requests served, by handler.",
	}, []string{"handler"})

	AggregationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "incident_aggregations_total",
		Help: "Aggregate view computations performed.",
	})
)

// Register installs all collectors on the default registry. Call once at
// startup.
func Register() {
	prometheus.MustRegister(EventsLoaded, RequestsTotal, AggregationsTotal)
}

// Package metrics exposes Prometheus instrumentation for the fulfillment engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for monitoring engine health and throughput
var (
	OrdersRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_orders_registered_total",
			Help: "Total number of orders handed over by the ordering pipeline",
		},
	)

	StateTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_state_transitions_total",
			Help: "Total number of order status transitions, by target status",
		},
		[]string{"status"},
	)

	ScansAcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_scans_accepted_total",
			Help: "Total number of accepted barcode scans",
		},
	)

	ScansRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_scans_rejected_total",
			Help: "Total number of rejected barcode scans",
		},
	)

	AssignmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_assignments_total",
			Help: "Total number of delivery assignments, by assignee kind",
		},
		[]string{"kind"},
	)

	CollectionsClosedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_collections_closed_total",
			Help: "Total number of contraentrega collections settled into the wallet",
		},
	)

	OutboxPublishedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_outbox_published_total",
			Help: "Total number of outbox messages delivered to the broker",
		},
	)

	OutboxPublishFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_outbox_publish_failures_total",
			Help: "Total number of outbox publish attempts that failed",
		},
	)

	RequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fulfillment_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(OrdersRegisteredTotal)
	prometheus.MustRegister(StateTransitionsTotal)
	prometheus.MustRegister(ScansAcceptedTotal)
	prometheus.MustRegister(ScansRejectedTotal)
	prometheus.MustRegister(AssignmentsTotal)
	prometheus.MustRegister(CollectionsClosedTotal)
	prometheus.MustRegister(OutboxPublishedTotal)
	prometheus.MustRegister(OutboxPublishFailuresTotal)
	prometheus.MustRegister(RequestDuration)
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package telemetry defines the Prometheus instrumentation of the
// limdberator server. All collectors are registered on a caller-provided
// registry so tests can run with an isolated one.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets is the latency histogram bucket layout, in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Metrics bundles every collector the server exports.
type Metrics struct {
	// ScrapesStored counts successfully persisted scrape results,
	// partitioned by payload kind ("title" or "person").
	ScrapesStored *prometheus.CounterVec

	// ScrapeStoreErrors counts scrape results that failed to persist.
	ScrapeStoreErrors prometheus.Counter

	// RequestDuration observes inbound HTTP request latency, partitioned by
	// method and response status code.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ScrapesStored: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "limdberator",
			Name:      "scrapes_stored_total",
			Help:      "Number of successfully stored scrape results.",
		}, []string{"kind"}),

		ScrapeStoreErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "limdberator",
			Name:      "scrape_store_errors_total",
			Help:      "Number of scrape results that failed to persist.",
		}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "limdberator",
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request latency.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "status"}),
	}
}

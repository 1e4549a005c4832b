// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "autocat"

var (
	// ListingRequests counts listings by sort order token.
	ListingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "listing_requests_total",
		Help:      "Listings served, by sort order.",
	}, []string{"sort"})

	// ListingMatches observes the filtered count of each listing.
	ListingMatches = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "listing_matches",
		Help:      "Records matching the listing criteria before pagination.",
		Buckets:   []float64{0, 1, 5, 12, 24, 48, 100, 500, 1000},
	})

	// DetailLookups counts detail requests by outcome (found, not_found, error).
	DetailLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "detail_lookups_total",
		Help:      "Vehicle detail lookups, by outcome.",
	}, []string{"outcome"})

	// StoreErrors counts failed record store reads by operation.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "store_errors_total",
		Help:      "Record store failures, by operation.",
	}, []string{"op"})

	// ContactSubmissions counts inquiries by outcome (accepted, invalid, rate_limited, error).
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact inquiries, by outcome.",
	}, []string{"outcome"})

	// HTTPDuration observes HTTP handler latency.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by route pattern, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

// Outcome labels.
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
)

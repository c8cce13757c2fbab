// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "artmarket"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogSearchesTotal counts listing queries served, by active sort key.
var CatalogSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_searches_total",
		Help:      "Total number of catalog listing queries served, by sort key.",
	},
	[]string{"sort"},
)

// ArtworksCreatedTotal counts published listings, by category.
var ArtworksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artworks_created_total",
		Help:      "Total number of artworks published, by category.",
	},
	[]string{"category"},
)

// ArtistSearchesTotal counts artist directory queries.
// Label:
//   - filtered: "true" when a free-text query was active, otherwise "false"
var ArtistSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artist_searches_total",
		Help:      "Total number of artist directory queries, by whether a text filter was active.",
	},
	[]string{"filtered"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations, by account role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

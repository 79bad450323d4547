package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Load board domain metrics.
var (
	LoadsPostedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "loads_posted_total",
			Help:      "Total number of loads posted",
		},
		[]string{"equipment"},
	)

	LoadClaimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "load_claims_total",
			Help:      "Load claim attempts by outcome",
		},
		[]string{"outcome"}, // "claimed" / "not_available" / "not_found"
	)

	LoadTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "load_transitions_total",
			Help:      "Accepted load status transitions by target status",
		},
		[]string{"status"},
	)

	TrucksPostedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "trucks_posted_total",
			Help:      "Total number of truck capacity postings",
		},
		[]string{"equipment"},
	)

	CitySearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "city_search_cache_total",
			Help:      "City search cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	StoreRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "store_records",
			Help:      "Records currently held per store",
		},
		[]string{"store"},
	)
)

var registerOnce sync.Once

// RegisterLoadBoardMetrics registers the domain metrics with the default registry.
// Safe to call more than once.
func RegisterLoadBoardMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			LoadsPostedTotal,
			LoadClaimsTotal,
			LoadTransitionsTotal,
			TrucksPostedTotal,
			CitySearchCacheTotal,
			StoreRecords,
		)
	})
}

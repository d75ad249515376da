package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits tracks cache hits by backend (memory, redis)
	Hits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"backend"},
	)

	// Misses tracks cache misses
	Misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crypto_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)

	// Errors tracks cache operation errors
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crypto_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)

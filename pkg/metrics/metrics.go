// Package metrics exposes the Prometheus registry and scrape handler for
// the crypto API. Individual metrics are defined in the packages that
// record them (pkg/cache, pkg/lcw) to keep them next to the code paths
// they observe.
//
// Available metrics:
//
// Cache (pkg/cache):
//   - crypto_cache_hits_total{backend} (Counter): cache hits by backend
//   - crypto_cache_misses_total (Counter): cache misses
//   - crypto_cache_errors_total{operation} (Counter): store operation errors
//
// Upstream (pkg/lcw):
//   - lcw_requests_total{endpoint, status} (Counter): upstream requests
//   - lcw_request_duration_seconds{endpoint} (Histogram): upstream latency
//   - lcw_errors_total{kind} (Counter): classified upstream errors
//
// Example queries:
//
//	# Cache hit rate
//	sum(rate(crypto_cache_hits_total[5m])) /
//	(sum(rate(crypto_cache_hits_total[5m])) + sum(rate(crypto_cache_misses_total[5m])))
//
//	# P95 upstream latency
//	histogram_quantile(0.95, rate(lcw_request_duration_seconds_bucket[5m]))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registry all package metrics register into
// via promauto.
var Registry = prometheus.DefaultRegisterer

// Handler returns the scrape handler mounted at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

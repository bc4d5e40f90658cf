package observability

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Domain metrics. HTTP traffic metrics live in the middleware package.
var (
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bhakti_cache_lookups_total",
			Help: "Cache lookups by namespace and result (hit, miss, stale, corrupt).",
		},
		[]string{"namespace", "result"},
	)

	fallbackUses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bhakti_fallback_total",
			Help: "Times curated or built-in content replaced an upstream result.",
		},
		[]string{"source"},
	)

	textgenRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bhakti_textgen_requests_total",
			Help: "Text generator calls by content type and outcome.",
		},
		[]string{"type", "outcome"},
	)

	breakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bhakti_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		},
		[]string{"name"},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups, fallbackUses, textgenRequests, breakerState)
}

// Cache lookup results.
const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheStale   = "stale"
	CacheCorrupt = "corrupt"
)

// CacheNamespace reduces a cache key to a bounded label: its first two
// dash-separated segments ("recommended-posts", "dharma-daily", ...).
func CacheNamespace(key string) string {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return key
}

// ObserveCache records one cache lookup.
func ObserveCache(key, result string) {
	cacheLookups.WithLabelValues(CacheNamespace(key), result).Inc()
}

// ObserveFallback records a fallback substitution for source
// (e.g. "posts", "spiritual-message", "trending").
func ObserveFallback(source string) {
	fallbackUses.WithLabelValues(source).Inc()
}

// ObserveTextgen records a text generator outcome (ok, rate_limited,
// quota, unavailable, open, error).
func ObserveTextgen(contentType, outcome string) {
	textgenRequests.WithLabelValues(contentType, outcome).Inc()
}

// SetBreakerState publishes a circuit breaker state.
func SetBreakerState(name string, state float64) {
	breakerState.WithLabelValues(name).Set(state)
}
